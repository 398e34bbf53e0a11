// Package settings models the privacy, detection and course configuration
// controls.
package settings

import (
	"fmt"
	"slices"
	"strings"
)

const (
	DefaultSensitivity = 50
	SensitivityStep    = 5
	MaxSensitivity     = 100
)

// Settings holds the per-user detection and privacy switches.
type Settings struct {
	IndividualMode   bool `mapstructure:"individual_mode" json:"individualMode"`
	Webcam           bool `mapstructure:"webcam" json:"webcamEnabled"`
	DataSharing      bool `mapstructure:"data_sharing" json:"dataSharingEnabled"`
	Sensitivity      int  `mapstructure:"sensitivity" json:"confusionSensitivity"`
	FacialExpression bool `mapstructure:"facial_expression" json:"facialExpression"`
	GazeTracking     bool `mapstructure:"gaze_tracking" json:"gazeTracking"`
	HeadPose         bool `mapstructure:"head_pose" json:"headPose"`
	Notifications    bool `mapstructure:"notifications" json:"notifications"`
}

// Defaults returns the initial settings.
func Defaults() Settings {
	return Settings{
		IndividualMode:   true,
		Webcam:           true,
		DataSharing:      false,
		Sensitivity:      DefaultSensitivity,
		FacialExpression: true,
		GazeTracking:     true,
		HeadPose:         true,
		Notifications:    true,
	}
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if s.Sensitivity < 0 || s.Sensitivity > MaxSensitivity {
		return fmt.Errorf("sensitivity must be between 0 and %d, got %d", MaxSensitivity, s.Sensitivity)
	}
	return nil
}

// Field names one boolean switch.
type Field int

const (
	FieldIndividualMode Field = iota
	FieldWebcam
	FieldDataSharing
	FieldFacialExpression
	FieldGazeTracking
	FieldHeadPose
	FieldNotifications
)

// AllFields returns the switches in display order.
func AllFields() []Field {
	return []Field{
		FieldIndividualMode,
		FieldWebcam,
		FieldDataSharing,
		FieldFacialExpression,
		FieldGazeTracking,
		FieldHeadPose,
		FieldNotifications,
	}
}

// Label returns the switch caption.
func (f Field) Label() string {
	switch f {
	case FieldIndividualMode:
		return "Processing Mode"
	case FieldWebcam:
		return "Webcam Access"
	case FieldDataSharing:
		return "Data Sharing"
	case FieldFacialExpression:
		return "Facial Expression Analysis"
	case FieldGazeTracking:
		return "Gaze Tracking"
	case FieldHeadPose:
		return "Head Pose Detection"
	case FieldNotifications:
		return "Help Notifications"
	default:
		return "Unknown"
	}
}

func (s *Settings) ptr(f Field) *bool {
	switch f {
	case FieldIndividualMode:
		return &s.IndividualMode
	case FieldWebcam:
		return &s.Webcam
	case FieldDataSharing:
		return &s.DataSharing
	case FieldFacialExpression:
		return &s.FacialExpression
	case FieldGazeTracking:
		return &s.GazeTracking
	case FieldHeadPose:
		return &s.HeadPose
	case FieldNotifications:
		return &s.Notifications
	default:
		return nil
	}
}

// Get returns the value of a switch.
func (s *Settings) Get(f Field) bool {
	if p := s.ptr(f); p != nil {
		return *p
	}
	return false
}

// Toggle flips a switch and returns its new value.
func (s *Settings) Toggle(f Field) bool {
	p := s.ptr(f)
	if p == nil {
		return false
	}
	*p = !*p
	return *p
}

// Describe returns the status line under a switch.
func (s *Settings) Describe(f Field) string {
	switch f {
	case FieldIndividualMode:
		if s.IndividualMode {
			return "Individual Study Mode: all processing happens locally on your device"
		}
		return "Class Analytics Mode: anonymous analytics shared with instructor"
	case FieldWebcam:
		if s.Webcam {
			return "Camera is active (Granted)"
		}
		return "Camera is disabled (Denied)"
	case FieldDataSharing:
		return "Share anonymized learning patterns"
	case FieldNotifications:
		return "Show help when confusion is detected"
	default:
		if s.Get(f) {
			return "On"
		}
		return "Off"
	}
}

// AdjustSensitivity moves the slider by delta, clamped to [0, MaxSensitivity].
func (s *Settings) AdjustSensitivity(delta int) int {
	s.Sensitivity = max(0, min(MaxSensitivity, s.Sensitivity+delta))
	return s.Sensitivity
}

// SensitivityLabel buckets the slider into Low, Medium and High.
func (s Settings) SensitivityLabel() string {
	switch {
	case s.Sensitivity < 33:
		return "Low"
	case s.Sensitivity < 66:
		return "Medium"
	default:
		return "High"
	}
}

// Course is the instructor-only course configuration.
type Course struct {
	Files []string `json:"files"`
	Tags  []string `json:"tags"`
}

// DefaultCourse returns the seeded course materials and topic tags.
func DefaultCourse() Course {
	return Course{
		Files: []string{
			"Lecture_Slides_Week1.pdf",
			"Neural_Networks_Transcript.srt",
		},
		Tags: []string{
			"Introduction",
			"Backpropagation",
			"Gradient Descent",
			"Activation Functions",
			"Loss Functions",
			"Regularization",
		},
	}
}

// AddTag appends a trimmed, non-duplicate tag. It reports whether the tag
// was added.
func (c *Course) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	if slices.ContainsFunc(c.Tags, func(t string) bool { return strings.EqualFold(t, tag) }) {
		return false
	}
	c.Tags = append(c.Tags, tag)
	return true
}

// RemoveTag deletes the tag at index i.
func (c *Course) RemoveTag(i int) bool {
	if i < 0 || i >= len(c.Tags) {
		return false
	}
	c.Tags = slices.Delete(c.Tags, i, i+1)
	return true
}

// RemoveFile deletes the file at index i.
func (c *Course) RemoveFile(i int) bool {
	if i < 0 || i >= len(c.Files) {
		return false
	}
	c.Files = slices.Delete(c.Files, i, i+1)
	return true
}
