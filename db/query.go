package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KaustubhAs/student-alumni-connect-app/models"
	"github.com/tidwall/gjson"
)

// ErrInvalidQuery indicates a content query that could not be parsed. Handlers
// translate it into a 400 response.
var ErrInvalidQuery = errors.New("invalid content query")

// --- Query Structures ---

// QueryCondition represents a single condition like "path operator value".
type QueryCondition struct {
	Path          string      // Dot notation path into the profile JSON (e.g., "JobTitle")
	Operator      string      // Base operator, lowercase, no suffix
	ParsedValue   interface{} // The parsed value (string, float64, bool, nil)
	ValueType     gjson.Type  // The type determined during parsing
	IsInsensitive bool        // Flag derived from operator suffix
	Original      string      // Original condition string for error messages
}

// LogicalOperator represents "and" or "or".
type LogicalOperator string

const (
	LogicAnd LogicalOperator = "and"
	LogicOr  LogicalOperator = "or"
)

// ParsedQuery holds the sequence of conditions and logical operators.
type ParsedQuery struct {
	Conditions []QueryCondition
	Logic      []LogicalOperator // Logic[i] applies between Conditions[i] and Conditions[i+1]
}

var validOperators = map[string]bool{
	"equals": true, "notequals": true,
	"greaterthan": true, "lessthan": true,
	"greaterthanorequals": true, "lessthanorequals": true,
	"contains": true, "startswith": true, "endswith": true,
}

// insensitiveBaseOperators are the base operators that accept the
// "-insensitive" suffix.
var insensitiveBaseOperators = map[string]bool{
	"equals": true, "notequals": true,
	"contains": true, "startswith": true, "endswith": true,
}

// --- Query Parsing ---

// ParseContentQuery takes the raw content_query values from the request and
// parses them into a structured ParsedQuery. Conditions alternate with
// logical operators; consecutive conditions without an explicit operator are
// rejected (the handler supplies "and"/"or" parts explicitly).
func ParseContentQuery(queryParts []string) (*ParsedQuery, error) {
	if len(queryParts) == 0 {
		return nil, nil // No query provided is valid
	}

	parsed := &ParsedQuery{}
	isExpectingCondition := true

	for i, part := range queryParts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("query part at index %d is empty: %w", i, ErrInvalidQuery)
		}

		if isExpectingCondition {
			condition, err := parseSingleCondition(part)
			if err != nil {
				return nil, fmt.Errorf("invalid condition at index %d ('%s'): %v: %w", i, part, err, ErrInvalidQuery)
			}
			parsed.Conditions = append(parsed.Conditions, condition)
		} else {
			logic := LogicalOperator(strings.ToLower(part))
			if logic != LogicAnd && logic != LogicOr {
				return nil, fmt.Errorf("invalid logical operator at index %d: '%s', expected 'and' or 'or': %w", i, part, ErrInvalidQuery)
			}
			parsed.Logic = append(parsed.Logic, logic)
		}
		isExpectingCondition = !isExpectingCondition
	}

	// The query must end with a condition, not a dangling logical operator.
	if isExpectingCondition {
		return nil, fmt.Errorf("query must end with a condition, not a logical operator: %w", ErrInvalidQuery)
	}

	return parsed, nil
}

// parseSingleCondition parses a string like "path operator value" into a
// QueryCondition, determining the type of the value.
func parseSingleCondition(conditionStr string) (QueryCondition, error) {
	parts := strings.Fields(conditionStr)
	if len(parts) < 3 {
		return QueryCondition{}, fmt.Errorf("condition must have the form 'path operator value'")
	}

	path := parts[0]
	operator := strings.ToLower(parts[1])

	// Reconstruct the raw value string, preserving original spacing if quoted.
	valueStartIndex := strings.Index(conditionStr, parts[2])
	if valueStartIndex == -1 {
		return QueryCondition{}, fmt.Errorf("internal parsing error: could not find value start")
	}
	rawValueStr := strings.TrimSpace(conditionStr[valueStartIndex:])

	isInsensitive := false
	if strings.HasSuffix(operator, "-insensitive") {
		baseOperator := strings.TrimSuffix(operator, "-insensitive")
		if !insensitiveBaseOperators[baseOperator] {
			return QueryCondition{}, fmt.Errorf("invalid base operator for insensitive matching '%s'", baseOperator)
		}
		isInsensitive = true
		operator = baseOperator
	}
	if !validOperators[operator] {
		return QueryCondition{}, fmt.Errorf("invalid operator '%s'", operator)
	}

	// Determine the value type. Order matters: numbers before booleans, as
	// "0" is valid for both.
	var parsedValue interface{}
	var valueType gjson.Type

	if len(rawValueStr) >= 2 && rawValueStr[0] == '"' && rawValueStr[len(rawValueStr)-1] == '"' {
		parsedValue = rawValueStr[1 : len(rawValueStr)-1]
		valueType = gjson.String
	} else if rawValueStr == "null" {
		parsedValue = nil
		valueType = gjson.Null
	} else if f, ok := tryParseFloat(rawValueStr); ok {
		parsedValue = f
		valueType = gjson.Number
	} else if b, ok := tryParseBool(rawValueStr); ok {
		parsedValue = b
		valueType = gjson.False
		if b {
			valueType = gjson.True
		}
	} else {
		// Default to string if not quoted and not null/number/bool.
		parsedValue = rawValueStr
		valueType = gjson.String
	}

	return QueryCondition{
		Path:          path,
		Operator:      operator,
		ParsedValue:   parsedValue,
		ValueType:     valueType,
		IsInsensitive: isInsensitive,
		Original:      conditionStr,
	}, nil
}

// --- Query Evaluation ---

// EvaluateContentQuery checks if a single profile matches the parsed query.
// The query operates on the profile's response JSON, so the computed FullName
// field is addressable alongside the stored fields.
func EvaluateContentQuery(profile models.Profile, query *ParsedQuery) (bool, error) {
	if query == nil || len(query.Conditions) == 0 {
		return true, nil // No query means match
	}

	jsonBytes, err := json.Marshal(models.NewProfileView(profile))
	if err != nil {
		return false, fmt.Errorf("marshalling profile for query evaluation: %w", err)
	}
	profileJSON := string(jsonBytes)

	result, err := evaluateSingleCondition(profileJSON, query.Conditions[0])
	if err != nil {
		return false, fmt.Errorf("error evaluating condition '%s': %w", query.Conditions[0].Original, err)
	}

	// Sequentially apply logical operators.
	for i, logic := range query.Logic {
		nextResult, err := evaluateSingleCondition(profileJSON, query.Conditions[i+1])
		if err != nil {
			return false, fmt.Errorf("error evaluating condition '%s': %w", query.Conditions[i+1].Original, err)
		}

		switch logic {
		case LogicAnd:
			result = result && nextResult
		case LogicOr:
			result = result || nextResult
		}
	}

	return result, nil
}

// evaluateSingleCondition checks if the profile JSON satisfies one condition.
func evaluateSingleCondition(profileJSON string, cond QueryCondition) (bool, error) {
	targetValue := gjson.Get(profileJSON, cond.Path)
	if !targetValue.Exists() {
		return false, fmt.Errorf("path '%s' does not exist in profile", cond.Path)
	}
	return compareJSONValue(targetValue, cond)
}

// compareJSONValue performs comparisons for gjson.Result values.
func compareJSONValue(targetValue gjson.Result, cond QueryCondition) (bool, error) {
	op := cond.Operator
	parsedVal := cond.ParsedValue
	condValType := cond.ValueType
	targetType := targetValue.Type

	// Null on either side only supports (in)equality.
	if targetType == gjson.Null || condValType == gjson.Null {
		bothNull := targetType == gjson.Null && condValType == gjson.Null
		switch op {
		case "equals":
			return bothNull, nil
		case "notequals":
			return !bothNull, nil
		default:
			return false, fmt.Errorf("operator '%s' invalid for null comparison", op)
		}
	}

	switch targetType {
	case gjson.String:
		targetStr := targetValue.String()
		switch op {
		case "equals", "notequals", "contains", "startswith", "endswith":
			if condValType != gjson.String {
				// Anything that is not a string can never equal one.
				if op == "notequals" {
					return true, nil
				}
				return false, fmt.Errorf("type mismatch: cannot compare string with %s using operator '%s'", condValType.String(), op)
			}
			condStr := parsedVal.(string)
			if cond.IsInsensitive {
				targetStr = strings.ToLower(targetStr)
				condStr = strings.ToLower(condStr)
			}
			switch op {
			case "equals":
				return targetStr == condStr, nil
			case "notequals":
				return targetStr != condStr, nil
			case "contains":
				return strings.Contains(targetStr, condStr), nil
			case "startswith":
				return strings.HasPrefix(targetStr, condStr), nil
			case "endswith":
				return strings.HasSuffix(targetStr, condStr), nil
			}
			return false, fmt.Errorf("internal error: unknown string operator '%s'", op)
		default:
			return false, fmt.Errorf("type mismatch: cannot apply numeric operator '%s' to string value", op)
		}

	case gjson.Number:
		targetNum := targetValue.Float()
		switch op {
		case "equals", "notequals", "greaterthan", "lessthan", "greaterthanorequals", "lessthanorequals":
			if condValType != gjson.Number {
				if op == "notequals" {
					return true, nil
				}
				return false, fmt.Errorf("type mismatch: value '%v' is not a valid number for comparison with operator '%s'", parsedVal, op)
			}
			valNum := parsedVal.(float64)
			switch op {
			case "equals":
				return targetNum == valNum, nil
			case "notequals":
				return targetNum != valNum, nil
			case "greaterthan":
				return targetNum > valNum, nil
			case "lessthan":
				return targetNum < valNum, nil
			case "greaterthanorequals":
				return targetNum >= valNum, nil
			case "lessthanorequals":
				return targetNum <= valNum, nil
			}
			return false, fmt.Errorf("internal error: unknown numeric operator '%s'", op)
		default:
			return false, fmt.Errorf("type mismatch: cannot apply string operator '%s' to numeric value", op)
		}

	case gjson.True, gjson.False:
		targetBool := targetValue.Bool()
		switch op {
		case "equals", "notequals":
			if condValType != gjson.True && condValType != gjson.False {
				if op == "notequals" {
					return true, nil
				}
				return false, fmt.Errorf("type mismatch: value '%v' is not a valid boolean for comparison with operator '%s'", parsedVal, op)
			}
			valBool := parsedVal.(bool)
			if op == "equals" {
				return targetBool == valBool, nil
			}
			return targetBool != valBool, nil
		default:
			return false, fmt.Errorf("operator '%s' is invalid for boolean comparison", op)
		}

	default:
		return false, fmt.Errorf("operator '%s' cannot directly compare arrays or objects", op)
	}
}

// tryParseFloat attempts to parse a string as float64.
func tryParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// tryParseBool attempts to parse a string as bool.
func tryParseBool(s string) (bool, bool) {
	b, err := strconv.ParseBool(s)
	return b, err == nil
}
