// Package cli implements the lenslearn command-line client: identifying
// objects in a photo, managing saved words and fetching pronunciations from a
// LensLearn server. Configuration comes from flags, $HOME/.lenslearn.yaml and
// LENSLEARN_* environment variables, in that order of precedence.
package cli
