package entity

import "time"

// Owner is a verified identity allowed to publish listings. Phone is the identity key.
type Owner struct {
	Phone    string
	Name     string
	Email    string
	JoinedAt time.Time
}

// OwnerSession is the result of a successful OTP verification.
type OwnerSession struct {
	Owner Owner
	Token string
}
