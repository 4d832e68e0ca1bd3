package mahjong

import (
	"fmt"
	"slices"
)

const RuleHubei = "hubei"

// Rule 地区规则：可作将的牌 + 必须亮出的牌
type Rule struct {
	Name        string
	Description string
	Eyes        []int // 可作将的牌下标，按顺序尝试
	MustDeclare Tile  // 持有即建议杠出，不参与出牌分析；TileNull 表示无
}

// RuleOption 规则选项函数类型
type RuleOption func(*Rule)

// WithEyes 指定可作将的牌
func WithEyes(tiles ...Tile) RuleOption {
	return func(r *Rule) {
		r.Eyes = r.Eyes[:0]
		for _, t := range tiles {
			if !t.IsValid() {
				r.Eyes = append(r.Eyes, -1)
				continue
			}
			r.Eyes = append(r.Eyes, t.Index())
		}
	}
}

// WithMustDeclare 指定必须杠出的牌
func WithMustDeclare(t Tile) RuleOption {
	return func(r *Rule) {
		r.MustDeclare = t
	}
}

func WithDescription(desc string) RuleOption {
	return func(r *Rule) {
		r.Description = desc
	}
}

// NewRule 默认二五八作将、红中必杠
func NewRule(name string, opts ...RuleOption) (*Rule, error) {
	r := &Rule{
		Name:        name,
		Eyes:        eyes258(),
		MustDeclare: TileZhong,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Eyes = dedupEyes(r.Eyes)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// HubeiRule 湖北麻将：二五八将，红中杠
func HubeiRule() *Rule {
	r, err := NewRule(RuleHubei, WithDescription("湖北麻将 (红中癞子杠)"))
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rule) Validate() error {
	if len(r.Eyes) == 0 {
		return fmt.Errorf("%w: %s has no eye tiles", ErrInvalidRule, r.Name)
	}
	for _, eye := range r.Eyes {
		if eye < 0 || eye >= SuitKindCount {
			return fmt.Errorf("%w: %s eye index %d is not a suit tile", ErrInvalidRule, r.Name, eye)
		}
	}
	if len(r.Eyes) >= SuitKindCount {
		return fmt.Errorf("%w: %s allows every suit tile as eye", ErrInvalidRule, r.Name)
	}
	if r.MustDeclare != TileNull && !r.MustDeclare.IsValid() {
		return fmt.Errorf("%w: %s must-declare tile %d", ErrInvalidRule, r.Name, r.MustDeclare)
	}
	return nil
}

func (r *Rule) HasMustDeclare() bool {
	return r.MustDeclare != TileNull
}

// IsEye 该牌能否作将
func (r *Rule) IsEye(t Tile) bool {
	return t.IsValid() && slices.Contains(r.Eyes, t.Index())
}

func (r *Rule) EyeTiles() []Tile {
	res := make([]Tile, len(r.Eyes))
	for i, eye := range r.Eyes {
		res[i] = TileAt(eye)
	}
	return res
}

func eyes258() []int {
	var res []int
	for _, t := range AllTiles() {
		if t.Is258() {
			res = append(res, t.Index())
		}
	}
	return res
}

func dedupEyes(eyes []int) []int {
	res := make([]int, 0, len(eyes))
	for _, eye := range eyes {
		if !slices.Contains(res, eye) {
			res = append(res, eye)
		}
	}
	return res
}
