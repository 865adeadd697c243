// Package document finds the HTML document the launcher serves.
//
// Resolution looks at the files directly inside one directory and applies a
// fixed precedence: the exact default name, then a keyword match on the file
// name, then any file ending in ".html". Sub-directories are never searched.
package document
