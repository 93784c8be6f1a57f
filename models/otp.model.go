package models

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// OTP purposes
const (
	PurposePasswordReset     = "password_reset"
	PurposeEmailVerification = "email_verification"
)

// Ledger failure reasons, surfaced verbatim to clients
const (
	ReasonInvalidOTP = "Invalid OTP"
	ReasonExpiredOTP = "OTP has expired"
)

// OTPValidity is how long a code stays usable after creation
const OTPValidity = 10 * time.Minute

// OTPRetention is how long records are kept before cleanup removes them
const OTPRetention = 24 * time.Hour

type OTP struct {
	gorm.Model
	Email      string `gorm:"size:100;index:idx_otp_lookup;not null" json:"email"`
	Code       string `gorm:"size:6;not null" json:"code"`
	Purpose    string `gorm:"size:20;index:idx_otp_lookup;not null" json:"purpose"`
	IsVerified bool   `gorm:"default:false" json:"is_verified"`
}

// GenerateOTPCode generates a 6-digit OTP code
func GenerateOTPCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("%d", 100000+rng.Intn(900000))
}

// CreateOTP inserts a fresh OTP record for the given email and purpose.
// Older records for the same pair are left in place until cleanup; lookups
// always prefer the newest.
func CreateOTP(db *gorm.DB, email, purpose string) (*OTP, error) {
	record := OTP{
		Email:   email,
		Code:    GenerateOTPCode(),
		Purpose: purpose,
	}

	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// IsValid reports whether the OTP is still within its time window.
// Verification state does not affect validity.
func (o *OTP) IsValid() bool {
	return !time.Now().After(o.CreatedAt.Add(OTPValidity))
}

// VerifyOTP looks up the latest-created record matching (email, code, purpose)
// and checks its validity. On success it returns the matched record and an
// empty reason; when markVerified is set the record is flagged verified
// (re-verifying an already-verified record is a no-op write). On failure the
// record is nil and the reason is one of ReasonInvalidOTP or ReasonExpiredOTP.
func VerifyOTP(db *gorm.DB, email, code, purpose string, markVerified bool) (*OTP, string) {
	var record OTP

	err := db.Where("email = ? AND code = ? AND purpose = ?", email, code, purpose).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		return nil, ReasonInvalidOTP
	}

	if !record.IsValid() {
		return nil, ReasonExpiredOTP
	}

	if markVerified && !record.IsVerified {
		record.IsVerified = true
		if err := db.Save(&record).Error; err != nil {
			return nil, ReasonInvalidOTP
		}
	}

	return &record, ""
}

// DeleteOTP permanently removes an OTP record. Called after a successful
// password reset so the same code cannot confirm a reset twice.
func DeleteOTP(db *gorm.DB, record *OTP) error {
	return db.Unscoped().Delete(record).Error
}

// CleanupOldOTPs deletes every record older than OTPRetention and returns the
// number of rows removed. Not invoked by any request path; runs from the cron
// schedule or the admin maintenance endpoint.
func CleanupOldOTPs(db *gorm.DB) (int64, error) {
	cutoff := time.Now().Add(-OTPRetention)

	result := db.Unscoped().Where("created_at < ?", cutoff).Delete(&OTP{})
	return result.RowsAffected, result.Error
}
