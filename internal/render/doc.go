// Package render turns bug data into the derived views the pages show:
// table rows and their badges, frequency tables, bar chart configurations
// and CSV exports. Functions here do no I/O.
package render
