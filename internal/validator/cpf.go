package validator

import "errors"

var (
	ErrCPFLength     = errors.New("cpf must contain 11 digits")
	ErrCPFRepeated   = errors.New("cpf with repeated digits is invalid")
	ErrCPFCheckDigit = errors.New("cpf check digit mismatch")
)

// CPF validates a Brazilian taxpayer id. Non-digit characters are stripped
// before checking, so formatted input ("529.982.247-25") is accepted. An
// empty value passes: presence is a separate required-field concern.
func CPF(value string) error {
	if value == "" {
		return nil
	}

	digits := make([]int, 0, 11)
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) != 11 {
		return ErrCPFLength
	}

	repeated := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return ErrCPFRepeated
	}

	if checkDigit(digits, 9) != digits[9] {
		return ErrCPFCheckDigit
	}
	if checkDigit(digits, 10) != digits[10] {
		return ErrCPFCheckDigit
	}

	return nil
}

// checkDigit computes the verifier over the first n digits with descending
// weights n+1..2; a remainder of 10 or 11 counts as 0.
func checkDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		return 0
	}
	return remainder
}
