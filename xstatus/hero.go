// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package xstatus

import "fmt"

// HeroStatus is a hero's current availability (spec.md §3: "status ∈
// {AVAILABLE, ON_MISSION, BANNED, WARNED}").
type HeroStatus uint8

const (
	HeroAvailable HeroStatus = iota
	HeroOnMission
	HeroBanned
	HeroWarned
)

func (s HeroStatus) String() string {
	switch s {
	case HeroAvailable:
		return "AVAILABLE"
	case HeroOnMission:
		return "ON_MISSION"
	case HeroBanned:
		return "BANNED"
	case HeroWarned:
		return "WARNED"
	default:
		return "INVALID"
	}
}

func (s HeroStatus) Valid() bool {
	switch s {
	case HeroAvailable, HeroOnMission, HeroBanned, HeroWarned:
		return true
	default:
		return false
	}
}

// ParseHeroStatus is String's inverse (spec.md §4.2).
func ParseHeroStatus(s string) (HeroStatus, error) {
	switch s {
	case "AVAILABLE":
		return HeroAvailable, nil
	case "ON_MISSION":
		return HeroOnMission, nil
	case "BANNED":
		return HeroBanned, nil
	case "WARNED":
		return HeroWarned, nil
	default:
		return 0, fmt.Errorf("xstatus: invalid HeroStatus %q", s)
	}
}

// HeroClass is a hero's adventuring specialty. The set of classes and
// their balance contribution is not enumerated in spec.md; fixed here per
// SPEC_FULL.md §C (heroPower formula) as a replay-stable constant table.
type HeroClass uint8

const (
	ClassWarrior HeroClass = iota
	ClassRogue
	ClassMage
	ClassCleric
	ClassRanger
	numHeroClasses = int(ClassRanger) + 1
)

// NumHeroClasses is the size of the HeroClass domain, used by the name
// pool and balance tables so both stay in lock-step with the enum.
const NumHeroClasses = numHeroClasses

func (c HeroClass) String() string {
	switch c {
	case ClassWarrior:
		return "WARRIOR"
	case ClassRogue:
		return "ROGUE"
	case ClassMage:
		return "MAGE"
	case ClassCleric:
		return "CLERIC"
	case ClassRanger:
		return "RANGER"
	default:
		return "INVALID"
	}
}

func (c HeroClass) Valid() bool {
	return c >= ClassWarrior && c <= ClassRanger
}

// ParseHeroClass is String's inverse (spec.md §4.2).
func ParseHeroClass(s string) (HeroClass, error) {
	switch s {
	case "WARRIOR":
		return ClassWarrior, nil
	case "ROGUE":
		return ClassRogue, nil
	case "MAGE":
		return ClassMage, nil
	case "CLERIC":
		return ClassCleric, nil
	case "RANGER":
		return ClassRanger, nil
	default:
		return 0, fmt.Errorf("xstatus: invalid HeroClass %q", s)
	}
}
