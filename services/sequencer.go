package services

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Mawltheus/acaraje-manager/pkg/apperr"
)

const orderNumberPrefix = "PED"

var orderNumberPattern = regexp.MustCompile(`^PED(\d{4,})$`)

// NextOrderNumber produces the order number following the last issued
// one. A stored number that no longer matches the expected shape is a
// data-integrity failure: guessing a number here could reuse one.
func NextOrderNumber(last string) (string, error) {
	if last == "" {
		return orderNumberPrefix + "0001", nil
	}
	m := orderNumberPattern.FindStringSubmatch(last)
	if m == nil {
		return "", apperr.Store(fmt.Sprintf("malformed last order number %q", last), nil)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", apperr.Store(fmt.Sprintf("malformed last order number %q", last), err)
	}
	return fmt.Sprintf("%s%04d", orderNumberPrefix, n+1), nil
}
