// Package pet 定义宠物的数值状态及其规范化规则
//
// 状态只有名字和三个非负整数属性（体重、快乐、睡眠），
// 由 widget 包中的动作处理器独占修改。
package pet

import (
	"errors"
	"fmt"
	"math"
)

// Attribute 宠物的数值属性标识
type Attribute string

const (
	// AttrWeight 体重
	AttrWeight Attribute = "weight"
	// AttrHappiness 快乐值
	AttrHappiness Attribute = "happiness"
	// AttrSleep 睡眠值
	AttrSleep Attribute = "sleep"
)

// Attributes 所有属性，按显示顺序排列
var Attributes = []Attribute{AttrWeight, AttrHappiness, AttrSleep}

// ErrUnknownAttribute 属性名无法识别
var ErrUnknownAttribute = errors.New("unknown pet attribute")

// PetState 宠物状态
//
// 属性在内部以 float64 累加，Normalize 之后保证为非负整数。
// 配置中允许出现小数增量（如 0.5），取整规则与四舍五入一致。
type PetState struct {
	Name string

	weight    float64
	happiness float64
	sleep     float64
}

// NewPetState 创建宠物状态，初始值同样经过规范化
func NewPetState(name string, weight, happiness, sleep float64) *PetState {
	s := &PetState{
		Name:      name,
		weight:    weight,
		happiness: happiness,
		sleep:     sleep,
	}
	s.Normalize()
	return s
}

// Weight 返回体重
func (s *PetState) Weight() int { return int(s.weight) }

// Happiness 返回快乐值
func (s *PetState) Happiness() int { return int(s.happiness) }

// Sleep 返回睡眠值
func (s *PetState) Sleep() int { return int(s.sleep) }

// ApplyDelta 对指定属性加上增量，然后立即规范化
//
// 注意：规范化不会刷新界面，调用方需要自行调用 Refresh。
func (s *PetState) ApplyDelta(attr Attribute, delta float64) error {
	p, err := s.field(attr)
	if err != nil {
		return err
	}
	*p += delta
	s.Normalize()
	return nil
}

// Normalize 将所有属性限制为 >= 0 并取整
// 没有上限
func (s *PetState) Normalize() {
	for _, p := range []*float64{&s.weight, &s.happiness, &s.sleep} {
		if *p < 0 {
			*p = 0
		}
		*p = math.Round(*p)
	}
}

func (s *PetState) field(attr Attribute) (*float64, error) {
	switch attr {
	case AttrWeight:
		return &s.weight, nil
	case AttrHappiness:
		return &s.happiness, nil
	case AttrSleep:
		return &s.sleep, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
}

// ParseAttribute 将配置中的属性名转换为 Attribute
func ParseAttribute(name string) (Attribute, error) {
	attr := Attribute(name)
	switch attr {
	case AttrWeight, AttrHappiness, AttrSleep:
		return attr, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}
