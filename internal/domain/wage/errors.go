package wage

import "errors"

var (
	ErrWageRecordNotFound = errors.New("wage record not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
)
