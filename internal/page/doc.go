// Package page holds the page controllers: review, bugs, insights and
// reports. Controllers are headless. They talk to the backend through a
// Backend, keep fetched records in a store they own, and push everything
// they render to a View. Bootstrap activates exactly one of them.
package page
