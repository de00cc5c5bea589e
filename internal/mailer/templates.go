package mailer

import (
	"fmt"
	"html"
)

const cardWrapper = `<div style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; text-align: center;">
  <div style="background-color: #ffffff; border-radius: 8px; padding: 20px; max-width: 500px; margin: auto;">
    <h2 style="color: #333333; margin-bottom: 10px;">%s</h2>
    %s
  </div>
</div>`

// OTPBody renders the verification passcode email.
func OTPBody(code string) (subject, body string) {
	inner := fmt.Sprintf(
		`<p style="color: #555555; font-size: 16px;">Your verification code is:</p>
    <div style="background-color: #2196F3; color: #ffffff; border-radius: 5px; padding: 15px; margin: 20px 0; font-size: 24px; font-weight: bold;">%s</div>`,
		html.EscapeString(code))
	return "Email Verification", fmt.Sprintf(cardWrapper, "Verify Your Email", inner)
}

// ResetOTPBody renders the password-reset passcode email.
func ResetOTPBody(code string) (subject, body string) {
	inner := fmt.Sprintf(
		`<p style="color: #555555; font-size: 16px;">We received a request to reset your password. Use this code to complete the process:</p>
    <div style="background-color: #2196F3; color: #ffffff; border-radius: 5px; padding: 15px; margin: 20px 0; font-size: 24px; font-weight: bold;">%s</div>
    <p style="color: #777777; font-size: 14px;">If you did not request a password reset, ignore this email.</p>`,
		html.EscapeString(code))
	return "Password Reset Code", fmt.Sprintf(cardWrapper, "Password Reset Request", inner)
}

// PasswordChangedBody renders the post-change notice.
func PasswordChangedBody() (subject, body string) {
	inner := `<p style="color: #555555; font-size: 16px;">Your password has been updated. If you did not request this change, contact support immediately.</p>`
	return "Password Updated", fmt.Sprintf(cardWrapper, "Password Updated Successfully", inner)
}

// CompanyUpdatedBody renders the company-change notice.
func CompanyUpdatedBody(companyName string) (subject, body string) {
	inner := fmt.Sprintf(
		`<p style="color: #555555; font-size: 16px;">The details for <strong>%s</strong> have been updated.</p>
    <p style="color: #777777; font-size: 14px;">If you did not request this update, contact support.</p>`,
		html.EscapeString(companyName))
	return "Company Update Confirmation", fmt.Sprintf(cardWrapper, "Company Updated", inner)
}

// CompanyDeletedBody renders the company-removal notice.
func CompanyDeletedBody(companyName string) (subject, body string) {
	inner := fmt.Sprintf(
		`<p style="color: #555555; font-size: 16px;"><strong>%s</strong> has been deleted.</p>
    <p style="color: #777777; font-size: 14px;">If you did not request this deletion, contact support.</p>`,
		html.EscapeString(companyName))
	return "Company Deletion Confirmation", fmt.Sprintf(cardWrapper, "Company Deleted", inner)
}

// JobUpdatedBody renders the job-change notice.
func JobUpdatedBody(jobTitle string) (subject, body string) {
	inner := fmt.Sprintf(
		`<p style="color: #555555; font-size: 16px;">The posting <strong>%s</strong> has been updated.</p>
    <p style="color: #777777; font-size: 14px;">If you did not request this update, contact support.</p>`,
		html.EscapeString(jobTitle))
	return "Job Update Confirmation", fmt.Sprintf(cardWrapper, "Job Updated", inner)
}
