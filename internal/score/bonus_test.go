package score

import (
	"testing"

	"git.lost.host/meutraa/lanota/internal/game"
)

var bonusTests = map[game.Difficulty]float64{
	{Level: 1}:               1.0,
	{Level: 12, Plus: true}:  1.0,
	{Level: 13}:              1.0,
	{Level: 13, Plus: true}:  1.5,
	{Level: 14, Plus: true}:  1.5,
	{Level: 14}:              1.0,
	{Level: 15}:              1.0,
	{Level: 15, Plus: true}:  1.75,
	{Level: 16}:              1.5,
	{Level: 16, Plus: true}:  2.25,
	{Level: 17, Plus: true}:  2.25,
	{Level: 17}:              1.0,
	{Level: 0, Plus: true}:   1.0,
	{Level: -4}:              1.0,
	{Level: 100, Plus: true}: 2.25,
}

func TestBonus(t *testing.T) {
	for d, expected := range bonusTests {
		if out := Bonus(d); out != expected {
			t.Log("difficulty", d)
			t.Log("out       ", out)
			t.Log("expected  ", expected)
			t.Fail()
		}
	}
}

func TestBonusRulesNamed(t *testing.T) {
	for i, rule := range bonusRules {
		if rule.Name == "" || rule.Match == nil {
			t.Errorf("rule %d is incomplete", i)
		}
	}
}
