// Package chart draws render.ChartConfig bar charts onto concrete surfaces:
// standalone SVG files and terminal text. Each chart is scaled on its own
// data; charts never share an axis.
package chart
