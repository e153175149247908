package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"coursedex/internal/adapters/report"

	"github.com/spf13/cobra"
)

func newMenuCmd(sf *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Browse the catalog through the numbered menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := io.WriteString(out, "This is a course management system...\n"); err != nil {
				return err
			}
			eng, err := loadEngine(cmd.Context(), *sf)
			if err != nil {
				return err
			}
			return runMenu(cmd.InOrStdin(), out, eng)
		},
	}
}

const menuWidth = 50

var menuText = "\n" + strings.Repeat("-", menuWidth) + "\nClient menu:\n" + strings.Repeat("=", menuWidth) +
	"\n1. Display all courses and information.\n" +
	"2. Display each courses and number of sections.\n" +
	"3. Display totals.\n" +
	"4. Find an instructor\n" +
	"5. Display all instructors.\n" +
	"6. Display invalid courses.\n" +
	"7. Display sections for each subject.\n" +
	"8. Display each term for a section.\n" +
	"9. Find each term and section for a course.\n" +
	"\n" + strings.Repeat("=", menuWidth) + "\n[Q] to quit\n\tInput: "

// runMenu loops until Q or the input ends
func runMenu(in io.Reader, out io.Writer, c report.Catalog) error {
	sc := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(out, menuText); err != nil {
			return err
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(strings.ToUpper(line), "Q") {
			return nil
		}

		n, _ := strconv.Atoi(line)
		var err error
		switch n {
		case 1:
			err = report.All(out, c)
		case 2:
			err = report.SubjectCounts(out, c)
		case 3:
			err = report.Totals(out, c)
		case 4:
			name, ok, qerr := prompt(sc, out, "Please search name for an instructor: ")
			if qerr != nil || !ok {
				return qerr
			}
			err = report.InstructorSearch(out, c, name)
		case 5:
			err = report.Instructors(out, c)
		case 6:
			err = report.Conflicts(out, c)
		case 7:
			err = report.SubjectSections(out, c)
		case 8:
			err = report.CourseTerms(out, c)
		case 9:
			code, ok, qerr := prompt(sc, out, "Please search course to display all terms: ")
			if qerr != nil || !ok {
				return qerr
			}
			err = report.CourseSearch(out, c, code)
		default:
			_, err = io.WriteString(out, "Error, try again!\n")
		}
		if err != nil {
			return err
		}
	}
}

// prompt asks until a non-empty line arrives; ok is false when input ends first
func prompt(sc *bufio.Scanner, out io.Writer, question string) (string, bool, error) {
	for {
		if _, err := io.WriteString(out, question); err != nil {
			return "", false, err
		}
		if !sc.Scan() {
			return "", false, sc.Err()
		}
		if s := strings.TrimSpace(sc.Text()); s != "" {
			return s, true, nil
		}
	}
}
