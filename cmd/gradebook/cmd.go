package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/mmynk/gradebook/internal/auth"
	"github.com/mmynk/gradebook/internal/calculator"
	"github.com/mmynk/gradebook/internal/export"
	"github.com/mmynk/gradebook/internal/gradebook"
	"github.com/mmynk/gradebook/internal/history"
	"github.com/mmynk/gradebook/internal/models"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	book *gradebook.Book
	out  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  semester save [-id ID] [-name NAME] -subject CODE:CREDIT:GRADE ... - calculate and save a semester GPA")
	fmt.Fprintln(cli.out, "  semester list                   - list saved semesters")
	fmt.Fprintln(cli.out, "  semester rm ID                  - delete a semester")
	fmt.Fprintln(cli.out, "  semester clear                  - delete every semester")
	fmt.Fprintln(cli.out, "  overall save [-id ID] -name NAME [-semesters ID,ID] [-toggle ID ...] - save an overall GPA")
	fmt.Fprintln(cli.out, "  overall list                    - list saved overall GPAs")
	fmt.Fprintln(cli.out, "  overall show ID                 - show an overall GPA with its semesters")
	fmt.Fprintln(cli.out, "  overall rm ID                   - delete an overall GPA")
	fmt.Fprintln(cli.out, "  overall clear                   - delete every overall GPA")
	fmt.Fprintln(cli.out, "  cgpa GPA ...                    - average semester GPAs")
	fmt.Fprintln(cli.out, "  export -o FILE                  - write both histories to an xlsx workbook")
	fmt.Fprintln(cli.out, "  hash-passphrase                 - hash a passphrase for auth.passphrase_hash")
}

func (cli *commandLine) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// run dispatches args, including the program name.
func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "semester":
		return cli.semester(ctx, args[2:])
	case "overall":
		return cli.overall(ctx, args[2:])
	case "cgpa":
		return cli.cgpa(args[2:])
	case "export":
		return cli.export(ctx, args[2:])
	case "hash-passphrase":
		return cli.hashPassphrase()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) semester(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "save":
		return cli.saveSemester(ctx, args[1:])
	case "list":
		recs, err := cli.book.ListSemesters(ctx)
		if err != nil {
			return err
		}
		cli.printSemesters(recs)
		return nil
	case "rm":
		if len(args) != 2 {
			cli.printUsage()
			return errHelp
		}
		if err := cli.book.DeleteSemester(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Deleted semester %s\n", args[1])
		return nil
	case "clear":
		if err := cli.book.ClearSemesters(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "Semester history cleared")
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) saveSemester(ctx context.Context, args []string) error {
	fs := cli.flagSet("semester save")
	id := fs.String("id", "", "ID of a saved semester to edit")
	name := fs.String("name", "", "semester name")
	var subjects subjectList
	fs.Var(&subjects, "subject", "subject as CODE:CREDIT:GRADE (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Editing starts from the saved record: omitted flags keep its values.
	if *id != "" {
		existing, err := cli.book.GetSemester(ctx, *id)
		switch {
		case err == nil:
			if len(subjects) == 0 {
				subjects = calculator.SubjectInputs(existing.Subjects)
			}
			if !isSet(fs, "name") {
				*name = existing.Name
			}
		case !errors.Is(err, history.ErrNotFound):
			return err
		}
	}
	if len(subjects) == 0 {
		fs.Usage()
		return errHelp
	}

	rec, err := cli.book.SaveSemester(ctx, gradebook.SemesterDraft{ID: *id, Name: *name, Subjects: subjects})
	if err != nil {
		return err
	}
	if rec.ID == "" {
		fmt.Fprintf(cli.out, "GPA: %s (no credits, not saved)\n", rec.GPA)
		return nil
	}
	fmt.Fprintf(cli.out, "Saved semester %s %q: GPA %s over %g credits\n", rec.ID, rec.Name, rec.GPA, rec.TotalCredits)
	return nil
}

func (cli *commandLine) overall(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "save":
		return cli.saveOverall(ctx, args[1:])
	case "list":
		recs, err := cli.book.ListOveralls(ctx)
		if err != nil {
			return err
		}
		cli.printOveralls(recs)
		return nil
	case "show":
		if len(args) != 2 {
			cli.printUsage()
			return errHelp
		}
		rec, semesters, err := cli.book.ExpandOverall(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "%s %q: OGPA %s over %g credits (%s)\n", rec.ID, rec.Name, rec.OGPA, rec.TotalCredits, rec.Date)
		cli.printSemesters(semesters)
		return nil
	case "rm":
		if len(args) != 2 {
			cli.printUsage()
			return errHelp
		}
		if err := cli.book.DeleteOverall(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Deleted overall %s\n", args[1])
		return nil
	case "clear":
		if err := cli.book.ClearOveralls(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "Overall history cleared")
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) saveOverall(ctx context.Context, args []string) error {
	fs := cli.flagSet("overall save")
	id := fs.String("id", "", "ID of a saved overall GPA to edit")
	name := fs.String("name", "", "overall GPA name")
	semesters := fs.String("semesters", "", "comma-separated semester IDs to select")
	var toggles stringList
	fs.Var(&toggles, "toggle", "semester ID to add to or remove from the selection (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var selected []string
	if *id != "" {
		existing, err := cli.book.GetOverall(ctx, *id)
		switch {
		case err == nil:
			selected = existing.Semesters
			if !isSet(fs, "name") {
				*name = existing.Name
			}
		case !errors.Is(err, history.ErrNotFound):
			return err
		}
	}
	if isSet(fs, "semesters") {
		selected = splitIDs(*semesters)
	}
	for _, t := range toggles {
		selected = calculator.ToggleSelection(t, selected)
	}

	rec, err := cli.book.SaveOverall(ctx, gradebook.OverallDraft{ID: *id, Name: *name, Semesters: selected})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Saved overall %s %q: OGPA %s over %d semesters\n", rec.ID, rec.Name, rec.OGPA, len(rec.Semesters))
	return nil
}

func (cli *commandLine) cgpa(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	cgpa, err := calculator.AverageGPA(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "CGPA: %s\n", cgpa)
	return nil
}

func (cli *commandLine) export(ctx context.Context, args []string) error {
	fs := cli.flagSet("export")
	output := fs.String("o", "", "output .xlsx file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return errHelp
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *output, err)
	}
	if err := export.WriteBook(ctx, f, cli.book); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", *output, err)
	}
	fmt.Fprintf(cli.out, "Exported to %s\n", *output)
	return nil
}

func (cli *commandLine) hashPassphrase() error {
	fmt.Fprint(cli.out, "Enter passphrase:")
	pass, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassphrase(string(pass))
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, hash)
	return nil
}

func (cli *commandLine) printSemesters(recs []models.SemesterRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(cli.out, "No semesters")
		return
	}
	tw := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGPA\tCREDITS\tDATE")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\n", r.ID, r.Name, r.GPA, r.TotalCredits, r.Date)
	}
	tw.Flush()
}

func (cli *commandLine) printOveralls(recs []models.OverallRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(cli.out, "No overall GPAs")
		return
	}
	tw := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOGPA\tCREDITS\tSEMESTERS\tDATE")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\t%s\n", r.ID, r.Name, r.OGPA, r.TotalCredits, strings.Join(r.Semesters, ","), r.Date)
	}
	tw.Flush()
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
