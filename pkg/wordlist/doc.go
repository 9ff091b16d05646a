// Package wordlist reads newline-delimited word lists and writes candidate
// streams, one candidate per line.
//
// Readers are lazy: Scanner.Words yields lines as they are read, so input
// files of any size can feed the generator without being loaded into memory.
// Line terminators ("\n" or "\r\n") are removed and invalid UTF-8 byte
// sequences are dropped. Surrounding whitespace is preserved; trimming is the
// consumer's concern.
package wordlist
