package metadata

import "fmt"

type Condition string

const (
	ConditionNew           Condition = "NEW"
	ConditionGood          Condition = "GOOD"
	ConditionFair          Condition = "FAIR"
	ConditionPoor          Condition = "POOR"
	ConditionDamaged       Condition = "DAMAGED"
	ConditionUnserviceable Condition = "UNSERVICEABLE"
)

func NewCondition(value string) (Condition, error) {
	condition := Condition(value)
	if !condition.IsValid() {
		return "", fmt.Errorf("invalid condition: %s", value)
	}
	return condition, nil
}

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor,
		ConditionDamaged, ConditionUnserviceable:
		return true
	default:
		return false
	}
}

func (c Condition) String() string {
	return string(c)
}
