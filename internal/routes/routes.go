package routes

// Path names under /api keep the shapes the existing frontend already
// calls; the /api/jobs pair is the newer surface for the same data.
const (
	// Health
	Health = "/health"

	// Job search + detail
	Jobs    = "/api/jobs"
	JobByID = "/api/jobs/{id}"
	Filters = "/api/filters"

	// Job posting management
	JobPostingList   = "/api/jobPosting/listJobPosting"
	JobPostingByID   = "/api/jobPosting/listJobPostingId/{id}"
	JobPostingCreate = "/api/jobPosting/postJobPosting"

	// Accounts
	AccountList       = "/api/account/listAccount"
	AccountRegister   = "/api/account/postRegister"
	AccountPostLogin  = "/api/account/postLogin"
	AccountHardDelete = "/api/account/deleteAccount/{id}"
	AccountSoftDelete = "/api/account/softDeleteAccount/{id}"

	// Password reset flow
	AccountForgot        = "/api/account/forgot"
	AccountOTP           = "/api/account/otp"
	AccountResetPassword = "/api/account/resetPassword"

	// Auth
	AuthLogin   = "/api/auth/login"
	AuthProfile = "/api/auth/profile"
)
