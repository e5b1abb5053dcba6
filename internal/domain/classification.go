package domain

// Classification is the new-vs-established status of a patient with respect
// to a provider, derived from appointment history.
type Classification string

const (
	ClassificationNew         Classification = "NEW"
	ClassificationEstablished Classification = "ESTABLISHED"
)

func (c Classification) String() string {
	return string(c)
}
