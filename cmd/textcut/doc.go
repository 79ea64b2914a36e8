// Command textcut bundles small text-processing tools around a shared
// tokenization pipeline: cut selects fields from tokenized lines, tok prints
// the tokens themselves, and uuid generates random identifiers.
package main
