package purchase

import "errors"

var ErrPurchaseNotFound = errors.New("purchase not found")
