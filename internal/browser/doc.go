// Package browser implements the dashboard main menu and the unit, subfolder, and script menus as an explicit
// state machine.
package browser
