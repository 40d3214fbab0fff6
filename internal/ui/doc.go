// Package ui provides helpers for formatting human-readable console output.
//
// Theme renders menu headings and task status tags with lipgloss, bound to the
// writer the menus print to so redirected output stays plain text.
// LaunchMessageFormatter and ConsoleLaunchEventLogger translate detached launch
// results into concise messages for the user and the diagnostic logger.
package ui
