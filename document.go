package docwritex

// Document is the opaque payload written to the document store. The writer
// never inspects its contents; it is handed as-is to the store driver.
type Document map[string]interface{}

// Converter turns a pipeline item into a Document. The writer only consults
// the converter for items that are not already Documents.
type Converter interface {
	Convert(item interface{}) (Document, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(item interface{}) (Document, error)

func (f ConverterFunc) Convert(item interface{}) (Document, error) {
	return f(item)
}
