package validation

import "unicode/utf8"

const minDataLength = 1

type PayloadValidator struct {
	maxLength int
}

func NewPayloadValidator(maxLength int) *PayloadValidator {
	return &PayloadValidator{maxLength: maxLength}
}

func (v *PayloadValidator) MaxLength() int {
	return v.maxLength
}

// ValidateData checks the process payload. Length is counted in characters,
// not bytes.
func (v *PayloadValidator) ValidateData(data *string) error {
	if data == nil {
		return ErrDataRequired
	}

	n := utf8.RuneCountInString(*data)
	if n < minDataLength {
		return ErrDataTooShort
	}
	if n > v.maxLength {
		return ErrDataTooLong
	}

	return nil
}
