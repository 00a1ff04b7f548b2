package wicker

// Version is the current release of the wicker module.
const Version = "0.3.0"
