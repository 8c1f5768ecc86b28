package chat

import (
	"strings"
	"unicode"
)

// action is a side effect a matched rule requests from the service.
type action int

const (
	actionNone action = iota
	actionStartBooking
	actionStartLead
	actionAskAssistant
)

// reply is the outcome of one engine invocation: at most one canned
// response, an optional topic change, and an optional flow action.
type reply struct {
	text         string
	quickReplies []string
	topic        Topic
	act          action
}

// rule pairs the quick-reply labels that select it verbatim with an
// optional free-text predicate. Labels are matched in a first pass over
// the whole cascade before any predicate runs, so a button press always
// lands on its own rule even when its label contains another rule's
// keyword ("See AI Demo", "Back to Main Menu").
type rule struct {
	name    string
	labels  []string
	free    func(in string) bool
	respond func() reply
}

func contains(subs ...string) func(string) bool {
	return func(in string) bool {
		for _, s := range subs {
			if strings.Contains(in, s) {
				return true
			}
		}
		return false
	}
}

// containsWord matches whole words only. Needed for short keywords like
// "ai" that occur inside everyday words ("email", "main", "wait").
func containsWord(words ...string) func(string) bool {
	return func(in string) bool {
		fields := strings.FieldsFunc(in, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, f := range fields {
			for _, w := range words {
				if f == w {
					return true
				}
			}
		}
		return false
	}
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(in string) bool {
		for _, p := range preds {
			if p(in) {
				return true
			}
		}
		return false
	}
}

// Engine classifies normalized user input against the canned script.
type Engine struct {
	rules []rule
}

// NewEngine builds the rule cascade. Within the free-text pass the
// ordering is load-bearing: the booking trigger sits above the topic
// rules so "book" inside a longer phrase cannot be shadowed, and pricing
// outranks lead capture so "send info about pricing" answers with
// pricing rather than starting the lead flow.
func NewEngine() *Engine {
	rules := []rule{
		{
			name:   "book",
			labels: []string{"Book Free Consultation"},
			free:   contains("book", "appointment"),
			respond: func() reply {
				return reply{act: actionStartBooking}
			},
		},
		{
			name:   "pricing",
			labels: []string{"Get Pricing Info"},
			free:   contains("price", "cost"),
			respond: func() reply {
				return reply{text: pricingText, quickReplies: pricingQuickReplies, topic: TopicPricing}
			},
		},
		{
			name:   "services",
			labels: []string{"Explore Services"},
			free:   contains("services"),
			respond: func() reply {
				return reply{text: servicesText, quickReplies: servicesQuickReplies}
			},
		},
		{
			name:   "questions",
			labels: []string{"Ask Questions"},
			free:   contains("question"),
			respond: func() reply {
				return reply{text: questionsText, topic: TopicQuestions}
			},
		},
		{
			name:   "ai",
			labels: []string{"AI Solutions"},
			free:   anyOf(containsWord("ai"), contains("chatbot")),
			respond: func() reply {
				return reply{text: aiText, quickReplies: aiQuickReplies, topic: TopicAI}
			},
		},
		{
			name:   "web",
			labels: []string{"Digital Development"},
			free:   contains("website", "web"),
			respond: func() reply {
				return reply{text: webText, quickReplies: webQuickReplies, topic: TopicWeb}
			},
		},
		{
			name:   "content",
			labels: []string{"Content & Marketing"},
			free:   contains("content", "marketing"),
			respond: func() reply {
				return reply{text: contentText, quickReplies: contentQuickReplies, topic: TopicContent}
			},
		},
		{
			name:   "demo",
			labels: []string{"See AI Demo"},
			free:   contains("demo"),
			respond: func() reply {
				return reply{text: demoText, quickReplies: demoQuickReplies}
			},
		},
		{
			name:   "consultation",
			labels: []string{"Yes, Book Demo Call"},
			free:   contains("consultation"),
			respond: func() reply {
				return reply{act: actionStartBooking}
			},
		},
		{
			name:   "back-to-menu",
			labels: []string{"Back to Main Menu"},
			respond: func() reply {
				return reply{text: backToMenuText, quickReplies: topLevelQuickReplies, topic: TopicWelcome}
			},
		},
		{
			name:   "portfolio",
			labels: []string{"View Portfolio"},
			free:   contains("portfolio"),
			respond: func() reply {
				return reply{text: portfolioText, quickReplies: portfolioQuickReplies}
			},
		},
		{
			name:   "lead-capture",
			labels: []string{"Just Send Info"},
			free:   contains("send info", "send me info"),
			respond: func() reply {
				return reply{act: actionStartLead}
			},
		},
	}
	return &Engine{rules: rules}
}

// Classify runs the cascade over a raw utterance or quick-reply label.
// Exact label matches are resolved before any free-text predicate.
// Unmatched input falls through to the default response with the
// top-level menu; free-form questions are offered to the assistant hook
// first when one is configured.
func (e *Engine) Classify(input string) reply {
	in := strings.ToLower(strings.TrimSpace(input))

	for _, r := range e.rules {
		for _, l := range r.labels {
			if in == strings.ToLower(l) {
				return r.respond()
			}
		}
	}
	for _, r := range e.rules {
		if r.free != nil && r.free(in) {
			return r.respond()
		}
	}

	if looksLikeQuestion(in) {
		return reply{act: actionAskAssistant}
	}
	return fallbackReply()
}

func fallbackReply() reply {
	return reply{text: fallbackText, quickReplies: topLevelQuickReplies}
}

// looksLikeQuestion is a deliberately narrow check: only explicit
// questions are routed to the assistant, everything else degrades to the
// menu fallback.
func looksLikeQuestion(in string) bool {
	if strings.HasSuffix(in, "?") {
		return true
	}
	for _, prefix := range []string{"how ", "what ", "why ", "when ", "can you ", "do you "} {
		if strings.HasPrefix(in, prefix) {
			return true
		}
	}
	return false
}
