// Package resources holds the adaptive learning material shown when a
// student hits a confusion peak: an explanation, a practice quiz, a code
// example and ranked external resources.
package resources

import (
	"sort"
	"strings"
)

// QuestionKind distinguishes quiz question variants.
type QuestionKind string

const (
	KindMCQ   QuestionKind = "mcq"
	KindShort QuestionKind = "short"
)

// Question is a single practice quiz item.
type Question struct {
	ID            string       `json:"id"`
	Kind          QuestionKind `json:"type"`
	Prompt        string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	// Keywords a short answer must mention to count as correct.
	Keywords []string `json:"keywords,omitempty"`
}

// Resource is an external study link ranked by relevance.
type Resource struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Relevance int    `json:"relevance"`
	Source    string `json:"source"`
}

// Content is the full assistant payload for a topic.
type Content struct {
	Topic       string     `json:"topic"`
	Explanation string     `json:"explanation"`
	Questions   []Question `json:"questions"`
	CodeExample string     `json:"codeExample"`
	CodeOutput  string     `json:"codeOutput"`
	Resources   []Resource `json:"resources"`
}

// RankedResources returns the resources ordered by relevance, highest first.
func (c *Content) RankedResources() []Resource {
	out := make([]Resource, len(c.Resources))
	copy(out, c.Resources)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Relevance > out[j].Relevance
	})
	return out
}

// ExplanationLines splits the explanation into display lines with the
// surrounding blank lines trimmed.
func (c *Content) ExplanationLines() []string {
	return strings.Split(strings.TrimSpace(c.Explanation), "\n")
}

// Question returns the question with the given id.
func (c *Content) Question(id string) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

const fence = "```"

// Builtin returns the bundled backpropagation material. Each call returns a
// fresh copy so callers may modify it.
func Builtin() *Content {
	return &Content{
		Topic:       "Backpropagation",
		Explanation: builtinExplanation,
		Questions: []Question{
			{
				ID:     "q1",
				Kind:   KindMCQ,
				Prompt: "What is the primary purpose of backpropagation in neural networks?",
				Options: []string{
					"To speed up forward propagation",
					"To calculate gradients for weight updates",
					"To initialize weights randomly",
					"To normalize input data",
				},
				CorrectAnswer: "To calculate gradients for weight updates",
			},
			{
				ID:     "q2",
				Kind:   KindMCQ,
				Prompt: "In backpropagation, gradients flow in which direction?",
				Options: []string{
					"From input to output",
					"From output to input",
					"Randomly throughout the network",
					"Only through the first layer",
				},
				CorrectAnswer: "From output to input",
			},
			{
				ID:            "q3",
				Kind:          KindShort,
				Prompt:        "Explain in one sentence why the chain rule is essential for backpropagation.",
				CorrectAnswer: "The chain rule allows us to compute the gradient of the loss with respect to each weight by multiplying the gradients along the path from the loss to that weight.",
				Keywords:      []string{"gradient", "weight"},
			},
		},
		CodeExample: builtinCode,
		CodeOutput:  "Predictions: [[0.] [1.] [1.] [0.]]",
		Resources: []Resource{
			{ID: "r1", Title: "Chapter 4: Backpropagation in Detail", Type: "PDF", Relevance: 95, Source: "Course Textbook"},
			{ID: "r2", Title: "Video: Visual Guide to Backpropagation", Type: "Video", Relevance: 88, Source: "3Blue1Brown"},
			{ID: "r3", Title: "Interactive Backpropagation Playground", Type: "Interactive", Relevance: 82, Source: "Course Materials"},
			{ID: "r4", Title: "Practice Problems Set 4", Type: "Worksheet", Relevance: 75, Source: "Course Materials"},
		},
	}
}

var builtinExplanation = `## Simplified Explanation: Backpropagation

**What is it?**
Backpropagation is how neural networks learn from their mistakes. Think of it like a teacher grading papers and telling each student exactly what they got wrong.

**Key Concepts:**

• **Forward Pass**: Input goes through the network to produce an output
• **Error Calculation**: Compare output with the correct answer
• **Backward Pass**: Send error signals back through each layer
• **Weight Updates**: Adjust connections based on their contribution to the error

**Analogy:**
Imagine a game of telephone where the message gets distorted. Backpropagation is like going back through each person and telling them exactly how much they changed the message, so they can do better next time.

**Formula (Simplified):**
` + fence + `
new_weight = old_weight - learning_rate × gradient
` + fence + `

The gradient tells us the direction and magnitude of change needed.`

const builtinCode = `import numpy as np

def sigmoid(x):
    """Sigmoid activation function"""
    return 1 / (1 + np.exp(-x))

def sigmoid_derivative(x):
    """Derivative of sigmoid for backpropagation"""
    return x * (1 - x)

# Simple 2-layer neural network
class SimpleNeuralNetwork:
    def __init__(self, input_size, hidden_size, output_size):
        # Initialize weights randomly
        self.weights1 = np.random.randn(input_size, hidden_size) * 0.5
        self.weights2 = np.random.randn(hidden_size, output_size) * 0.5

    def forward(self, X):
        """Forward pass through the network"""
        self.hidden = sigmoid(np.dot(X, self.weights1))
        self.output = sigmoid(np.dot(self.hidden, self.weights2))
        return self.output

    def backward(self, X, y, learning_rate=0.1):
        """Backpropagation to update weights"""
        output_error = y - self.output
        output_delta = output_error * sigmoid_derivative(self.output)

        hidden_error = output_delta.dot(self.weights2.T)
        hidden_delta = hidden_error * sigmoid_derivative(self.hidden)

        self.weights2 += self.hidden.T.dot(output_delta) * learning_rate
        self.weights1 += X.T.dot(hidden_delta) * learning_rate

nn = SimpleNeuralNetwork(2, 4, 1)
X = np.array([[0, 0], [0, 1], [1, 0], [1, 1]])
y = np.array([[0], [1], [1], [0]])  # XOR problem

for i in range(10000):
    nn.forward(X)
    nn.backward(X, y)

print("Predictions:", nn.output.round())`
