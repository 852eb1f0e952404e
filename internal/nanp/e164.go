package nanp

import "github.com/nyaruka/phonenumbers"

// UnknownRegion is returned by Region when no NANP member matches the number.
const UnknownRegion = "ZZ"

// parsed converts n into libphonenumber's representation. Parsing a
// "+1" prefixed ten digit string never needs network data.
func (n Number) parsed() (*phonenumbers.PhoneNumber, error) {
	return phonenumbers.Parse("+1"+n.Digits(), "US")
}

// E164 renders the number as "+1AAAEEELLLL".
func (n Number) E164() string {
	if n.IsZero() {
		return ""
	}
	pn, err := n.parsed()
	if err != nil {
		return "+1" + n.Digits()
	}
	return phonenumbers.Format(pn, phonenumbers.E164)
}

// Region returns the ISO region of the NANP member that owns the area code
// (for example "US" or "CA"), or UnknownRegion. The lookup uses the metadata
// compiled into libphonenumber and performs no network access.
func (n Number) Region() string {
	if n.IsZero() {
		return UnknownRegion
	}
	pn, err := n.parsed()
	if err != nil {
		return UnknownRegion
	}
	if region := phonenumbers.GetRegionCodeForNumber(pn); region != "" {
		return region
	}
	return UnknownRegion
}
