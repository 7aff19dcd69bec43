package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/pratik-mahalle/usuarios-api/pkg/client"
)

const timeLayout = "2006-01-02 15:04:05"

// Table renders data as a formatted table.
type Table struct {
	headers []string
	rows    [][]string
	writer  io.Writer
}

// NewTable creates a new table with the given headers.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{
		headers: headers,
		writer:  w,
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.rows = append(t.rows, cols)
}

// Render writes the table.
func (t *Table) Render() {
	w := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(t.headers, "\t"))

	sep := make([]string, len(t.headers))
	for i, h := range t.headers {
		sep[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(sep, "\t"))

	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
}

// getOutputFormat resolves the output format. Piped output defaults to
// json unless a format was asked for explicitly.
func getOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	format := viper.GetString("output")
	if format == "table" && !stdoutIsTerminal() {
		return "json"
	}
	return format
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// printOutput prints data in the requested non-table format.
func printOutput(w io.Writer, data interface{}) error {
	switch getOutputFormat() {
	case "yaml":
		return printYAML(w, data)
	default:
		return printJSON(w, data)
	}
}

func printJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printYAML(w io.Writer, data interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(data)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatEstado returns a state string with visual indicator.
func formatEstado(estado string) string {
	switch strings.ToUpper(estado) {
	case "ACTIVO":
		return "[+] " + estado
	case "INACTIVO":
		return "[~] " + estado
	case "ELIMINADO":
		return "[-] " + estado
	default:
		return estado
	}
}

func formatPremium(premium bool) string {
	if premium {
		return "yes"
	}
	return "no"
}

func renderUsuarios(w io.Writer, users []client.Usuario) error {
	if getOutputFormat() != "table" {
		return printOutput(w, users)
	}

	t := NewTable(w, "ID", "NOMBRE", "EMAIL", "PREMIUM", "ESTADO", "MODIFICADO")
	for _, u := range users {
		t.AddRow(
			strconv.FormatInt(u.ID, 10),
			truncate(u.Nombre, 30),
			truncate(u.Email, 40),
			formatPremium(u.Premium),
			formatEstado(u.Estado),
			u.FechaModificacion.Local().Format(timeLayout),
		)
	}
	t.Render()
	return nil
}

func renderUsuario(w io.Writer, u *client.Usuario) error {
	if getOutputFormat() != "table" {
		return printOutput(w, u)
	}

	fmt.Fprintf(w, "ID:          %d\n", u.ID)
	fmt.Fprintf(w, "Nombre:      %s\n", u.Nombre)
	fmt.Fprintf(w, "Email:       %s\n", u.Email)
	fmt.Fprintf(w, "Premium:     %s\n", formatPremium(u.Premium))
	fmt.Fprintf(w, "Estado:      %s\n", formatEstado(u.Estado))
	fmt.Fprintf(w, "Creado:      %s\n", u.FechaCreacion.Local().Format(timeLayout))
	fmt.Fprintf(w, "Modificado:  %s\n", u.FechaModificacion.Local().Format(timeLayout))
	return nil
}
