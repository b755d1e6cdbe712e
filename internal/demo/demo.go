// Package demo runs the fixed walkthrough executed by cmd/clientbook: it
// rebuilds the schema, exercises every mutation once and prints two
// searches.
package demo

import (
	"context"
	"fmt"
	"io"

	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
	"github.com/BruksfildServices01/clientbook/internal/logging"
	"github.com/BruksfildServices01/clientbook/internal/report"
	ucClient "github.com/BruksfildServices01/clientbook/internal/usecase/client"
)

func str(s string) *string { return &s }

// Run stops at the first failing step.
func Run(ctx context.Context, uc *ucClient.Set, out io.Writer) error {
	if err := uc.Schema.Execute(ctx, true); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	ivanov, err := uc.Create.Execute(ctx, ucClient.CreateClientInput{
		FirstName: "Ivan", LastName: "Ivanov", Email: "ivan@mail.ru",
	})
	if err != nil {
		return fmt.Errorf("add Ivanov: %w", err)
	}

	petrov, err := uc.Create.Execute(ctx, ucClient.CreateClientInput{
		FirstName: "Ivan", LastName: "Petrov", Email: "petr@mail.ru",
		Phones: []string{"211-46-31", "322-25-21"},
	})
	if err != nil {
		return fmt.Errorf("add Petrov: %w", err)
	}

	if _, err := uc.AddPhone.Execute(ctx, ivanov.ID, "344-12-12"); err != nil {
		return fmt.Errorf("add phone to %d: %w", ivanov.ID, err)
	}
	if _, err := uc.AddPhone.Execute(ctx, petrov.ID, "8(912)211-12-12"); err != nil {
		return fmt.Errorf("add phone to %d: %w", petrov.ID, err)
	}

	changes := []ucClient.ChangeClientInput{
		// first name only
		{ClientID: ivanov.ID, FirstName: str("Dmitry")},
		{ClientID: ivanov.ID, LastName: str("Vazov"), Email: str("dvazov@mail.ru")},
		{
			ClientID: ivanov.ID,
			Email:    str("newmail@mail.ru"),
			Phones:   []string{"777-77-77", "555-55-55"},
		},
	}
	for _, in := range changes {
		if _, err := uc.Change.Execute(ctx, in); err != nil {
			return fmt.Errorf("change client %d: %w", in.ClientID, err)
		}
	}

	if err := uc.DeletePhone.Execute(ctx, ivanov.ID, "555-55-55"); err != nil {
		return fmt.Errorf("delete phone: %w", err)
	}

	if err := uc.Delete.Execute(ctx, ivanov.ID); err != nil {
		return fmt.Errorf("delete client %d: %w", ivanov.ID, err)
	}

	for _, in := range []ucClient.CreateClientInput{
		{FirstName: "Ivan", LastName: "Ivanov", Email: "ivan@mail.ru", Phones: []string{"44-44-44"}},
		{FirstName: "Ivan", LastName: "Perunov", Email: "perunov@mail.ru", Phones: []string{"22-22-12"}},
	} {
		if _, err := uc.Create.Execute(ctx, in); err != nil {
			return fmt.Errorf("add %s: %w", in.LastName, err)
		}
	}

	searches := []struct {
		title  string
		filter domain.Filter
	}{
		{"Clients named Ivan", domain.Filter{FirstName: str("Ivan")}},
		{"Client with phone 211-46-31", domain.Filter{Phone: str("211-46-31")}},
	}
	for _, s := range searches {
		rows, err := uc.Find.Execute(ctx, s.filter)
		if err != nil {
			return fmt.Errorf("search %q: %w", s.title, err)
		}

		logging.Debugf("search %q returned %d rows", s.title, len(rows))

		fmt.Fprintln(out)
		if err := report.PrintRows(out, s.title, rows); err != nil {
			return err
		}
	}

	return nil
}
