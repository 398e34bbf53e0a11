package signals

// Behavior is an observable cue associated with confusion.
type Behavior string

const (
	BehaviorGazeAversion     Behavior = "gaze_aversion"
	BehaviorBrowTension      Behavior = "brow_tension"
	BehaviorHeadTilt         Behavior = "head_tilt"
	BehaviorReducedBlinkRate Behavior = "reduced_blink_rate"
	BehaviorMicroExpressions Behavior = "micro_expressions"
)

// AllBehaviors returns every behavior in detection order. Detected behaviors
// are always a prefix of this list.
func AllBehaviors() []Behavior {
	return []Behavior{
		BehaviorGazeAversion,
		BehaviorBrowTension,
		BehaviorHeadTilt,
		BehaviorReducedBlinkRate,
		BehaviorMicroExpressions,
	}
}

// Label returns a human-readable label for the behavior.
func (b Behavior) Label() string {
	switch b {
	case BehaviorGazeAversion:
		return "Gaze Aversion"
	case BehaviorBrowTension:
		return "Brow Tension"
	case BehaviorHeadTilt:
		return "Head Movement"
	case BehaviorReducedBlinkRate:
		return "Reduced Blinking"
	case BehaviorMicroExpressions:
		return "Micro Expressions"
	default:
		return string(b)
	}
}

// TimelineTopics are the lecture topics, rotating every 600 seconds.
var TimelineTopics = [6]string{
	"Introduction to Neural Networks",
	"Backpropagation Algorithm",
	"Gradient Descent Optimization",
	"Activation Functions",
	"Loss Functions",
	"Regularization Techniques",
}

// HeatmapPhases are the short topic names used for heatmap buckets.
var HeatmapPhases = [6]string{
	"Introduction",
	"Backpropagation",
	"Gradient Descent",
	"Activation Functions",
	"Loss Functions",
	"Regularization",
}

// RosterTopics is the pool challenging topics are drawn from.
var RosterTopics = [6]string{
	"Backpropagation",
	"Gradient Descent",
	"Activation Functions",
	"Loss Functions",
	"Regularization",
	"Optimization",
}

// DataPoint is one sample of the confusion timeline.
type DataPoint struct {
	Timestamp      int        `json:"timestamp"`
	ConfusionLevel float64    `json:"confusionLevel"`
	Topic          string     `json:"topic"`
	Behaviors      []Behavior `json:"behaviors"`
}

// Peak is a pre-authored high-confusion moment.
type Peak struct {
	Timestamp int    `json:"timestamp"`
	Level     int    `json:"level"`
	Topic     string `json:"topic"`
	Duration  int    `json:"duration"`
}

// HeatmapBucket aggregates cohort confusion over a 100 second slot.
type HeatmapBucket struct {
	Time               int    `json:"time"`
	PercentageConfused int    `json:"percentageConfused"`
	Topic              string `json:"topic"`
}

// StudentRecord holds synthetic per-student confusion statistics.
type StudentRecord struct {
	ID                 string   `json:"id"`
	AnonymizedName     string   `json:"anonymizedName"`
	AvgConfusion       int      `json:"avgConfusion"`
	ConfusionFrequency int      `json:"confusionFrequency"`
	ChallengingTopics  []string `json:"challengingTopics"`
}
