package models

import (
	"fmt"
	"strconv"
)

// LeadInput reports an incident at a location. The backend takes the
// coordinates as strings.
type LeadInput struct {
	Lat string `json:"lat" validate:"required,latitude"`
	Lng string `json:"lng" validate:"required,longitude"`
}

func NewLeadInput(lat, lng float64) LeadInput {
	return LeadInput{
		Lat: strconv.FormatFloat(lat, 'f', -1, 64),
		Lng: strconv.FormatFloat(lng, 'f', -1, 64),
	}
}

// MediaKind names the evidence slots of save_leads_media.
type MediaKind string

const (
	MediaImage MediaKind = "file_image"
	MediaVideo MediaKind = "file_video"
	MediaAudio MediaKind = "file_audio"
)

// ContentType is the MIME type sent for the slot.
func (k MediaKind) ContentType() string {
	switch k {
	case MediaImage:
		return "image/jpeg"
	case MediaVideo:
		return "video/mp4"
	case MediaAudio:
		return "audio/mpeg"
	default:
		return "application/octet-stream"
	}
}

// ParseMediaKind accepts the short CLI names (image, video, audio).
func ParseMediaKind(s string) (MediaKind, error) {
	switch s {
	case "image", "picture", string(MediaImage):
		return MediaImage, nil
	case "video", string(MediaVideo):
		return MediaVideo, nil
	case "audio", "voice", string(MediaAudio):
		return MediaAudio, nil
	default:
		return "", fmt.Errorf("unknown evidence kind %q", s)
	}
}

// Evidence attaches local files to a lead. Empty paths are skipped.
type Evidence struct {
	LeadID int64               `validate:"gt=0"`
	Files  map[MediaKind]string `validate:"min=1"`
}

// CaseStatus is the dispatch state of a reported case.
type CaseStatus string

const (
	CaseAccepted    CaseStatus = "accepted"
	CaseDispatching CaseStatus = "dispatching"
	CaseDispatched  CaseStatus = "dispatched"
	CaseFeedback    CaseStatus = "feedback"
	CaseClosed      CaseStatus = "closed"
	CaseInvalid     CaseStatus = "invalid"
	CasePending     CaseStatus = "pending"
)

// Normalize maps unknown and empty statuses to CasePending.
func (s CaseStatus) Normalize() CaseStatus {
	switch s {
	case CaseAccepted, CaseDispatching, CaseDispatched, CaseFeedback, CaseClosed, CaseInvalid:
		return s
	default:
		return CasePending
	}
}

// LabelKey is the translation key of the status label.
func (s CaseStatus) LabelKey() string {
	return "history." + string(s.Normalize())
}

// Case is one entry of the user_sos history.
type Case struct {
	LeadID         int64      `json:"lead_id"`
	CaseNumber     string     `json:"case_number"`
	CaseStatus     CaseStatus `json:"case_status"`
	TimeID         string     `json:"time_id"`
	District       string     `json:"district"`
	NearByLocation string     `json:"near_by_location"`
	PoliceStation  *string    `json:"police_station"`
	CROComments    *string    `json:"cro_comments"`
	AcceptedTime   string     `json:"accepted_time"`
	DispatchedTime string     `json:"dispatched_time"`
	FeedbackTime   string     `json:"feedback_time"`
	Level1Nature   *string    `json:"level1_case_nature"`
	CallChannel    string     `json:"call_channel"`
	CallerName     string     `json:"caller_name"`
}
