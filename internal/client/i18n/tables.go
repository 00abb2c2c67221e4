package i18n

var english = map[string]string{
	KeyWelcome:         "Welcome to ICT Emergency 15 !",
	KeyWelcomeHelp:     "Help make your community safer by reporting incidents to the police.",
	KeyWelcomeEasy:     "Easy Reporting and Privacy",
	KeyWelcomeReport:   "Report incidents easily while keeping your information private.",
	KeyWelcomeChoose:   "Choose your preferred language to get started.",
	KeyWelcomeSkip:     "Skip",
	KeyNavReport:       "Report Incident",
	KeyNavHistory:      "History",
	KeyNavProfile:      "My Profile",
	KeyNavEdit:         "Edit Profile",
	KeyNavGreet:        "Hi, %s",
	KeyNavSignOut:      "Sign Out",
	KeyReportAssist:    "Your assistance is important!",
	KeyReportPress:     "Kindly run the report command to report an incident and receive assistance from ICT-15.",
	KeyReportLocation:  "Retrieving your location...",
	KeyEvidenceThanks:  "Thank you!",
	KeyEvidenceReport:  "for reporting the incident. Our team will respond shortly.",
	KeyEvidenceAttach:  "To help us out even more, please attach any evidence you have",
	KeyEvidenceAppr:    "We appreciate your contribution!",
	KeyEvidenceResp:    "Thank you for submitting the evidence and helping ICT-15, our team will respond shortly.",
	KeyHistoryCases:    "Cases",
	KeyHistoryNone:     "No cases reported yet.",
	KeyProfilePersonal: "Personal Information",
	KeyProfileDelete:   "Delete Profile",
	KeyProfileSure:     "Do you want to permanently delete your account?",
	KeyProfileAssured:  "Rest assured, your identity remains confidential.",
	KeyLoginSuccess:    "Login Successful!",
	KeyLoginFailed:     "Not able to login right now. Please try again!",
	KeyRegistered:      "Registration received. Enter the OTP sent to %s.",
	KeyVerified:        "Account verified. You can login now.",
	KeyOTPSent:         "An OTP has been sent to %s.",
	KeyPasswordReset:   "Password has been reset. You can login now.",
	KeySignedOut:       "Signed out.",
	KeyProfileUpdated:  "Profile updated.",
	KeyProfileDeleted:  "Your account has been deleted.",
	KeyLanguageSet:     "Language set to %s.",
	KeyUnknownCommand:  "Unknown command: %s",
	KeyNotAvailable:    "Command %s is not available here.",
	KeyCancelled:       "Cancelled.",
	KeyBye:             "Bye!",
	KeyCommands:        "Available commands: %s",

	"history.accepted":    "Accepted",
	"history.dispatching": "Dispatching",
	"history.dispatched":  "Dispatched",
	"history.feedback":    "Feedback",
	"history.closed":      "Closed",
	"history.invalid":     "Invalid",
	"history.pending":     "Pending",
}

var urdu = map[string]string{
	KeyWelcome:         "آئی سی ٹی ایمرجنسی 15 میں خوش آمدید!",
	KeyWelcomeHelp:     "پولیس کو واقعات کی اطلاع دے کر اپنی کمیونٹی کو محفوظ بنانے میں مدد کریں۔",
	KeyWelcomeEasy:     "آسان رپورٹنگ اور رازداری",
	KeyWelcomeReport:   "اپنی معلومات کو نجی رکھتے ہوئے آسانی سے واقعات کی اطلاع دیں۔",
	KeyWelcomeChoose:   "شروع کرنے کے لیے اپنی پسندیدہ زبان کا انتخاب کریں۔",
	KeyWelcomeSkip:     "چھوڑ دو",
	KeyNavReport:       "واقعہ کی اطلاع دیں۔",
	KeyNavHistory:      "ہسٹری",
	KeyNavProfile:      "میری پروفائل",
	KeyNavEdit:         "پروفائل میں ترمیم کریں",
	KeyNavGreet:        "سلام، %s",
	KeyNavSignOut:      "باہر جائیں",
	KeyReportAssist:    "آپ کی مدد اہم ہے!",
	KeyReportLocation:  "آپ کا مقام بازیافت کیا جا رہا ہے...",
	KeyEvidenceThanks:  "شکریہ!",
	KeyEvidenceReport:  "واقعہ کی اطلاع دینے کے لیے ۔ہماری ٹیم جلد ہی جواب دے گی۔",
	KeyEvidenceAttach:  "ہماری مزید مدد کرنے کے لیے، آپ کے پاس کوئی ثبوت ہے براہ مہربانی منسلک کریں",
	KeyEvidenceAppr:    "ہم آپ کے تعاون کے شکر گزار ہیں!",
	KeyEvidenceResp:    "ثبوت جمع کرانے اور ICT-15 کی مدد کرنے کا شکریہ، ہماری ٹیم ترجیحی بنیادوں پر جواب دے گی۔",
	KeyHistoryCases:    "کیسز",
	KeyHistoryNone:     "ابھی تک کوئی کیس رپورٹ نہیں ہوا۔",
	KeyProfilePersonal: "ذاتی معلومات",
	KeyProfileDelete:   "پروفائل حذف کریں۔",
	KeyProfileSure:     "کیا آپ اپنا اکاؤنٹ مستقل طور پر حذف کرنا چاہتے ہیں؟",
	KeyProfileAssured:  "یقین دلائیں، آپ کی شناخت خفیہ رہے گی۔",

	"history.accepted":    "قبول کر لیا",
	"history.dispatching": "بھیجنا",
	"history.dispatched":  "روانہ کر دیا گیا۔",
	"history.feedback":    "تاثرات",
	"history.closed":      "بند",
	"history.invalid":     "غلط",
}
