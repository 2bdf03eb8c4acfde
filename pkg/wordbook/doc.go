// Package wordbook loads named word packs for the numwords converter.
//
// A word pack pairs a vocabulary (numwords.Words) with the option defaults
// that suit it, such as the grouping style and currency names of the
// language. Packs are read from YAML or JSON documents keyed by language tag:
//
//	hi-latn:
//	  words:
//	    unitWords: [shunya, ek, do, ...]
//	    smallAmountWords: {hundred: sau, thousand: hazaar}
//	    andWord: aur
//	  options:
//	    useIndianStyle: true
//	    majorCurrencySymbol: rupaye
//
// The words document is merged over the English defaults field by field, so
// a pack may set only the words it changes. Both documents are decoded with
// numwords.DecodeWords and numwords.DecodeOverrides and carry the same
// validation messages.
//
// # Sources
//
// A Source returns raw pack documents. FileSource reads one file,
// DirectorySource reads every YAML and JSON file of a directory,
// EmbeddedSource reads a directory of any fs.FS and MapSource serves
// documents held in memory. Builtin returns the packs compiled into the
// module (en, en-in and hi-latn). Layered stacks sources so that a file on
// disk can extend or override the built-in packs.
//
// # Usage
//
//	book, err := wordbook.New(ctx, wordbook.Layered(
//		wordbook.Builtin(),
//		wordbook.NewDirectorySource(nil, "./packs", logger),
//	))
//	if err != nil {
//		return err
//	}
//
//	lang := book.Negotiate(r.Header.Get("Accept-Language"))
//	c, err := book.Converter(lang)
//	s, err := c.ToWords(1201) // "ek hazaar do sau ek" for hi-latn
//
// Language tags are matched case-insensitively after BCP 47 normalization.
// A regional tag without its own pack falls back to its base language.
//
// # Error Handling
//
// A language without a pack yields *ErrLanguageNotSupported. Loading errors
// wrap the sentinel errors of this package, and invalid pack contents match
// both ErrInvalidPack and numwords.ErrInvalidInput.
package wordbook
