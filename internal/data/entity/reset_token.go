package entity

// PasswordResetToken stores only the SHA-256 digest of the emailed token.
// One live token per user; Expiry is epoch milliseconds.
type PasswordResetToken struct {
	UserID    int64  `db:"user_id"`
	TokenHash string `db:"token"`
	Expiry    int64  `db:"expiry"`
}
