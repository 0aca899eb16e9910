// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package xstatus

import "fmt"

// ProofPolicy gates whether a player-reviewed return can be accepted
// (GLOSSARY: "Proof policy").
type ProofPolicy uint8

const (
	ProofFast ProofPolicy = iota
	ProofSoft
	ProofStrict
)

func (p ProofPolicy) String() string {
	switch p {
	case ProofFast:
		return "FAST"
	case ProofSoft:
		return "SOFT"
	case ProofStrict:
		return "STRICT"
	default:
		return "INVALID"
	}
}

func (p ProofPolicy) Valid() bool {
	switch p {
	case ProofFast, ProofSoft, ProofStrict:
		return true
	default:
		return false
	}
}

// ParseProofPolicy is String's inverse (spec.md §4.2).
func ParseProofPolicy(s string) (ProofPolicy, error) {
	switch s {
	case "FAST":
		return ProofFast, nil
	case "SOFT":
		return ProofSoft, nil
	case "STRICT":
		return ProofStrict, nil
	default:
		return 0, fmt.Errorf("xstatus: invalid ProofPolicy %q", s)
	}
}

// CloseDecision is the player's verdict when closing a return packet
// (spec.md §4.5: "CloseReturn(activeContractId, decision ∈ {ACCEPT,
// REJECT, UNSPECIFIED})").
type CloseDecision uint8

const (
	DecisionUnspecified CloseDecision = iota
	DecisionAccept
	DecisionReject
)

func (d CloseDecision) String() string {
	switch d {
	case DecisionUnspecified:
		return "UNSPECIFIED"
	case DecisionAccept:
		return "ACCEPT"
	case DecisionReject:
		return "REJECT"
	default:
		return "INVALID"
	}
}

func (d CloseDecision) Valid() bool {
	switch d {
	case DecisionUnspecified, DecisionAccept, DecisionReject:
		return true
	default:
		return false
	}
}

// RejectReason is the cause code attached to a rejected command (spec.md
// §4.5 / §7).
type RejectReason uint8

const (
	ReasonNotFound RejectReason = iota
	ReasonInvalidArg
	ReasonInvalidState
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNotFound:
		return "NOT_FOUND"
	case ReasonInvalidArg:
		return "INVALID_ARG"
	case ReasonInvalidState:
		return "INVALID_STATE"
	default:
		return "INVALID"
	}
}

func (r RejectReason) Valid() bool {
	switch r {
	case ReasonNotFound, ReasonInvalidArg, ReasonInvalidState:
		return true
	default:
		return false
	}
}
