package metadata

import (
	"fmt"
	"strings"
)

// InstanceCode is the unique scannable code stamped on a physical item
// instance, derived from the item code and the instance id.
type InstanceCode struct {
	itemCode string
	id       int
}

func NewInstanceCode(itemCode string, instanceID int) InstanceCode {
	return InstanceCode{
		itemCode: strings.ToUpper(itemCode),
		id:       instanceID,
	}
}

func (c InstanceCode) Generate() string {
	return fmt.Sprintf("%s-%05d", c.itemCode, c.id)
}
