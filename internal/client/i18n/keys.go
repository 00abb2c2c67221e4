package i18n

// Message keys. Values are looked up in the active language table and fall
// back to English, then to the key itself.
const (
	KeyWelcome         = "welcome.welcome"
	KeyWelcomeHelp     = "welcome.help"
	KeyWelcomeEasy     = "welcome.easy"
	KeyWelcomeReport   = "welcome.report"
	KeyWelcomeChoose   = "welcome.choose"
	KeyWelcomeSkip     = "welcome.skip"
	KeyNavReport       = "nav.report"
	KeyNavHistory      = "nav.history"
	KeyNavProfile      = "nav.profile"
	KeyNavEdit         = "nav.edit"
	KeyNavGreet        = "nav.greet"
	KeyNavSignOut      = "nav.signout"
	KeyReportAssist    = "report.assistance"
	KeyReportPress     = "report.press"
	KeyReportLocation  = "report.retrieving"
	KeyEvidenceThanks  = "evidence.thankyou"
	KeyEvidenceReport  = "evidence.incident"
	KeyEvidenceAttach  = "evidence.attach"
	KeyEvidenceAppr    = "evidence.appreciate"
	KeyEvidenceResp    = "evidence.respond"
	KeyHistoryCases    = "history.cases"
	KeyHistoryNone     = "history.reported"
	KeyProfilePersonal = "profile.personal"
	KeyProfileDelete   = "profile.delete"
	KeyProfileSure     = "profile.permanently"
	KeyProfileAssured  = "profile.assured"
	KeyLoginSuccess    = "auth.login_success"
	KeyLoginFailed     = "auth.login_failed"
	KeyRegistered      = "auth.registered"
	KeyVerified        = "auth.verified"
	KeyOTPSent         = "auth.otp_sent"
	KeyPasswordReset   = "auth.password_reset"
	KeySignedOut       = "auth.signed_out"
	KeyProfileUpdated  = "profile.updated"
	KeyProfileDeleted  = "profile.deleted"
	KeyLanguageSet     = "common.language_set"
	KeyUnknownCommand  = "common.unknown_command"
	KeyNotAvailable    = "common.not_available"
	KeyCancelled       = "common.cancelled"
	KeyBye             = "common.bye"
	KeyCommands        = "common.commands"
)
