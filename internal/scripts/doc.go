// Package scripts enumerates the unit, subfolder, and script directories shown by the dashboard and displays or
// launches a selected script.
package scripts
