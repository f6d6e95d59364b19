package repository

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// The field-level updates must bump the version attribute: a status
// transition built from a read taken before the update would otherwise pass
// its version check on Save and write the stale record back, reverting the
// assignment or quote figures.

func TestAssignmentUpdateExpression(t *testing.T) {
	t.Run("assign bumps the version", func(t *testing.T) {
		expr, values := assignmentUpdateExpression("tech-1")
		if !strings.Contains(expr, "#tech = :tech") {
			t.Fatalf("expected assignment clause, got %q", expr)
		}
		if !strings.Contains(expr, versionBumpClause) {
			t.Fatalf("expected version bump clause, got %q", expr)
		}
		tech, ok := values[":tech"].(*types.AttributeValueMemberS)
		if !ok || tech.Value != "tech-1" {
			t.Fatalf("unexpected :tech value: %+v", values[":tech"])
		}
		assertVersionBumpValues(t, values)
	})

	t.Run("unassign removes the field and still bumps the version", func(t *testing.T) {
		expr, values := assignmentUpdateExpression("")
		if !strings.Contains(expr, "REMOVE #tech") {
			t.Fatalf("expected remove clause, got %q", expr)
		}
		if !strings.Contains(expr, versionBumpClause) {
			t.Fatalf("expected version bump clause, got %q", expr)
		}
		if _, ok := values[":tech"]; ok {
			t.Fatalf("remove must not carry a :tech value: %+v", values)
		}
		assertVersionBumpValues(t, values)
	})
}

func TestQuoteFiguresUpdateExpression(t *testing.T) {
	expr, values := quoteFiguresUpdateExpression(200, 30, 230, true)
	for _, clause := range []string{"#sub = :sub", "#vat = :vat", "#total = :total", "#inc = :inc", versionBumpClause} {
		if !strings.Contains(expr, clause) {
			t.Fatalf("expected %q in %q", clause, expr)
		}
	}
	total, ok := values[":total"].(*types.AttributeValueMemberN)
	if !ok || total.Value != "230" {
		t.Fatalf("unexpected :total value: %+v", values[":total"])
	}
	inc, ok := values[":inc"].(*types.AttributeValueMemberBOOL)
	if !ok || !inc.Value {
		t.Fatalf("unexpected :inc value: %+v", values[":inc"])
	}
	assertVersionBumpValues(t, values)
}

func assertVersionBumpValues(t *testing.T, values map[string]types.AttributeValue) {
	t.Helper()
	zero, ok := values[":zero"].(*types.AttributeValueMemberN)
	if !ok || zero.Value != "0" {
		t.Fatalf("unexpected :zero value: %+v", values[":zero"])
	}
	one, ok := values[":one"].(*types.AttributeValueMemberN)
	if !ok || one.Value != "1" {
		t.Fatalf("unexpected :one value: %+v", values[":one"])
	}
}
