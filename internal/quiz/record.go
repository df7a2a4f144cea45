package quiz

import (
	"fmt"
	"math"
)

// FromRecord builds a Quiz from a loosely typed mapping such as a decoded
// YAML or JSON document. Every structural problem is reported through a
// single *ValidationError.
func FromRecord(record map[string]any) (*Quiz, error) {
	if record == nil {
		return nil, newValidationError("", "quiz record is empty")
	}
	collector := &issueCollector{}
	title, _ := requireString(collector, record, "title", "title")
	description, _ := requireString(collector, record, "description", "description")
	author := ""
	if raw, ok := record["author"]; ok && raw != nil {
		value, ok := raw.(string)
		if !ok {
			collector.add("author", "must be a string")
		}
		author = value
	}

	var questions []*Question
	rawQuestions, ok := record["questions"]
	if !ok || rawQuestions == nil {
		collector.add("questions", "is required")
	} else if list, ok := rawQuestions.([]any); !ok {
		collector.add("questions", "must be a list")
	} else {
		seenIDs := map[string]int{}
		for i, item := range list {
			prefix := fmt.Sprintf("questions[%d]", i)
			question := questionFromRecord(collector, prefix, item)
			if question == nil {
				continue
			}
			if first, exists := seenIDs[question.ID()]; exists {
				collector.add(prefix+".uniqueId", fmt.Sprintf("duplicate id %q (also questions[%d])", question.ID(), first))
				continue
			}
			seenIDs[question.ID()] = i
			questions = append(questions, question)
		}
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return New(title, description, author, questions)
}

func questionFromRecord(collector *issueCollector, prefix string, item any) *Question {
	record, ok := asMap(item)
	if !ok {
		collector.add(prefix, "must be a mapping")
		return nil
	}
	before := len(collector.issues)

	title, _ := requireString(collector, record, "title", prefix+".title")
	text, _ := requireString(collector, record, "text", prefix+".text")
	score, _ := requireInt(collector, record, "score", prefix+".score")
	keywords := requireStringList(collector, record, "keywords", prefix+".keywords")
	answers := requireAnswers(collector, record, prefix+".answers")

	id := ""
	for _, key := range []string{"uniqueId", "unique_id"} {
		raw, present := record[key]
		if !present || raw == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			collector.add(prefix+"."+key, "must be a string")
			break
		}
		id = value
		break
	}

	var kind QuestionType
	if raw, present := record["type"]; present && raw != nil {
		value, ok := raw.(string)
		if !ok {
			collector.add(prefix+".type", "must be a string")
		} else if parsed, ok := ParseQuestionType(value); ok {
			kind = parsed
		} else {
			collector.add(prefix+".type", fmt.Sprintf("unknown question type %q", value))
		}
	}

	if len(collector.issues) > before {
		return nil
	}
	question, err := NewQuestion(QuestionParams{
		ID:       id,
		Title:    title,
		Text:     text,
		Keywords: keywords,
		Score:    score,
		Type:     kind,
		Answers:  answers,
	})
	if err != nil {
		if validation, ok := err.(*ValidationError); ok {
			for _, issue := range validation.Issues {
				collector.add(prefix+"."+issue.Field, issue.Message)
			}
		} else {
			collector.add(prefix, err.Error())
		}
		return nil
	}
	return question
}

func requireAnswers(collector *issueCollector, record map[string]any, field string) []Answer {
	raw, ok := record["answers"]
	if !ok || raw == nil {
		collector.add(field, "is required")
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		collector.add(field, "must be a list")
		return nil
	}
	answers := make([]Answer, 0, len(list))
	for i, item := range list {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		answerRecord, ok := asMap(item)
		if !ok {
			collector.add(prefix, "must be a mapping")
			continue
		}
		text, _ := requireString(collector, answerRecord, "text", prefix+".text")
		correct := false
		if rawCorrect, present := answerRecord["correct"]; present && rawCorrect != nil {
			value, ok := rawCorrect.(bool)
			if !ok {
				collector.add(prefix+".correct", "must be a boolean")
			}
			correct = value
		}
		answers = append(answers, Answer{Text: text, Correct: correct})
	}
	return answers
}

func requireString(collector *issueCollector, record map[string]any, key, field string) (string, bool) {
	raw, ok := record[key]
	if !ok || raw == nil {
		collector.add(field, "is required")
		return "", false
	}
	value, ok := raw.(string)
	if !ok {
		collector.add(field, "must be a string")
		return "", false
	}
	return value, true
}

func requireInt(collector *issueCollector, record map[string]any, key, field string) (int, bool) {
	raw, ok := record[key]
	if !ok || raw == nil {
		collector.add(field, "is required")
		return 0, false
	}
	value, ok := asInt(raw)
	if !ok {
		collector.add(field, "must be an integer")
		return 0, false
	}
	return value, true
}

func requireStringList(collector *issueCollector, record map[string]any, key, field string) []string {
	raw, ok := record[key]
	if !ok || raw == nil {
		collector.add(field, "is required")
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		collector.add(field, "must be a list")
		return nil
	}
	values := make([]string, 0, len(list))
	for i, item := range list {
		value, ok := item.(string)
		if !ok {
			collector.add(fmt.Sprintf("%s[%d]", field, i), "must be a string")
			continue
		}
		values = append(values, value)
	}
	return values
}

// asMap accepts both string-keyed and any-keyed mappings.
func asMap(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			name, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[name] = item
		}
		return out, true
	default:
		return nil, false
	}
}

// asInt accepts any integral numeric kind, including JSON float64 values
// without a fractional part, as long as the value fits in an int.
func asInt(value any) (int, bool) {
	switch typed := value.(type) {
	case int:
		return typed, true
	case int8:
		return int(typed), true
	case int16:
		return int(typed), true
	case int32:
		return int(typed), true
	case int64:
		if typed > math.MaxInt || typed < math.MinInt {
			return 0, false
		}
		return int(typed), true
	case uint:
		return fromUnsigned(uint64(typed))
	case uint8:
		return int(typed), true
	case uint16:
		return int(typed), true
	case uint32:
		return fromUnsigned(uint64(typed))
	case uint64:
		return fromUnsigned(typed)
	case float32:
		return fromFloat(float64(typed))
	case float64:
		return fromFloat(typed)
	default:
		return 0, false
	}
}

func fromUnsigned(value uint64) (int, bool) {
	if value > math.MaxInt {
		return 0, false
	}
	return int(value), true
}

// fromFloat rejects fractions and values outside the int range. The upper
// bound is exclusive because float64(math.MaxInt) rounds up to 2^63.
func fromFloat(value float64) (int, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, false
	}
	if value >= float64(math.MaxInt) || value < float64(math.MinInt) {
		return 0, false
	}
	return int(value), true
}
