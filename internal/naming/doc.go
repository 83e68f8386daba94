// Package naming decides which files are montage candidates and where each
// candidate's contact sheet lives.
//
// The output path is a pure function of the input path: it does not depend
// on sampling or tile settings, so an existing sheet is never regenerated
// just because the configuration changed.
package naming
