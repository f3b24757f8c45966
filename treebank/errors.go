package treebank

import "errors"

// ErrorType enumerates the reasons a treebank file or collection could
// not be processed.
type ErrorType int

const (
	NoError ErrorType = iota
	NoFeatures
	TreebankFileDoesNotExist
	TreebankFileCouldNotBeOpened
	OutputFileCouldNotBeOpened
	MalformedTreebankFile
	MainFileDoesNotExist
	MainFileCouldNotBeOpened
	OutputDirectoryCouldNotBeCreated
	OutputJoinFileCouldNotBeOpened
	TreebankResultFileCouldNotBeOpened
	SomeTreebankFileFailed
	MalformedTreebankCollection
)

// String implements fmt.Stringer, mirroring
// treebank_error_type_to_string's switch.
func (e ErrorType) String() string {
	switch e {
	case NoError:
		return "no error"
	case NoFeatures:
		return "no features"
	case TreebankFileDoesNotExist:
		return "treebank file does not exist"
	case TreebankFileCouldNotBeOpened:
		return "treebank file could not be opened"
	case OutputFileCouldNotBeOpened:
		return "output file could not be opened"
	case MalformedTreebankFile:
		return "malformed treebank file"
	case MainFileDoesNotExist:
		return "main file does not exist"
	case MainFileCouldNotBeOpened:
		return "main file could not be opened"
	case OutputDirectoryCouldNotBeCreated:
		return "output directory could not be created"
	case OutputJoinFileCouldNotBeOpened:
		return "output join file could not be opened"
	case TreebankResultFileCouldNotBeOpened:
		return "treebank result file could not be opened"
	case SomeTreebankFileFailed:
		return "some treebank file failed"
	case MalformedTreebankCollection:
		return "malformed treebank collection"
	default:
		return "unknown treebank error"
	}
}

// Err adapts e to the standard error interface, nil for NoError.
func (e ErrorType) Err() error {
	if e == NoError {
		return nil
	}
	return errors.New("treebank: " + e.String())
}

var (
	// ErrNoFeatures indicates a processor was run with a nil feature
	// function.
	ErrNoFeatures = NoFeatures.Err()

	// ErrSomeTreebankFileFailed indicates at least one file in a
	// collection failed to process; see the returned per-file results
	// for which.
	ErrSomeTreebankFileFailed = SomeTreebankFileFailed.Err()

	// ErrMalformedTreebankFile indicates a treebank file's contents
	// could not be parsed as the expected format.
	ErrMalformedTreebankFile = MalformedTreebankFile.Err()

	// ErrMalformedMainFile indicates a collection's main file has a
	// line that is not a tab-separated (name, path) pair.
	ErrMalformedMainFile = MalformedTreebankCollection.Err()

	// ErrTreebankFileDoesNotExist indicates a treebank file's path does
	// not exist on disk.
	ErrTreebankFileDoesNotExist = TreebankFileDoesNotExist.Err()

	// ErrTreebankFileCouldNotBeOpened indicates a treebank file exists
	// but could not be read.
	ErrTreebankFileCouldNotBeOpened = TreebankFileCouldNotBeOpened.Err()

	// ErrMainFileDoesNotExist indicates a collection's main file path
	// does not exist on disk.
	ErrMainFileDoesNotExist = MainFileDoesNotExist.Err()

	// ErrMainFileCouldNotBeOpened indicates a collection's main file
	// exists but could not be read.
	ErrMainFileCouldNotBeOpened = MainFileCouldNotBeOpened.Err()

	// ErrNoMoreTreebanks indicates NextTreebank was called after
	// HasTreebank returned false.
	ErrNoMoreTreebanks = errors.New("treebank: no more treebanks in collection")
)
