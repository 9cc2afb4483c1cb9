package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"StockDesk/internal/desk"
	"StockDesk/internal/loader"
	"StockDesk/internal/recorder"
	"StockDesk/internal/render"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menu = `Main Menu, choose an option:
1) List loaded stocks
2) Upload stock CSV
3) Reload a stock from disk
4) Show sample rows (preview)
5) Generate stock summary
6) Price on a date
7) My Watchlist
8) Strategy Advisor (Buy/Sell Signals)
9) Portfolio Performance Tracker
10) Exit`

// Console is the interactive text menu.
type Console struct {
	Desk *desk.Desk
	in   *bufio.Scanner
	out  io.Writer
}

// New creates a console reading commands from in and writing to out.
func New(d *desk.Desk, in io.Reader, out io.Writer) *Console {
	return &Console{Desk: d, in: bufio.NewScanner(in), out: out}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) errorf(format string, a ...any) {
	c.println(errorStyle.Render(fmt.Sprintf(format, a...)))
}

func (c *Console) successf(format string, a ...any) {
	c.println(successStyle.Render(fmt.Sprintf(format, a...)))
}

// prompt prints label and reads one trimmed line; ok is false at end of input.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// Run loops over the main menu until the user exits or input ends.
func (c *Console) Run() error {
	c.println(titleStyle.Render(fmt.Sprintf("StockDesk: %d stocks loaded", c.Desk.Store.Len())))
	for {
		c.println()
		c.println(menu)
		choice, ok := c.prompt("Enter choice: ")
		if !ok {
			break
		}
		switch choice {
		case "1":
			c.println(render.StockList(c.Desk.Stocks()))
		case "2":
			c.upload()
		case "3":
			c.reload()
		case "4":
			c.preview()
		case "5":
			c.summary()
		case "6":
			c.price()
		case "7":
			c.watchlist()
		case "8":
			c.signals()
		case "9":
			c.performance()
		case "10", "q", "exit":
			c.println(fmt.Sprintf("Goodbye, %d stocks loaded.", c.Desk.Store.Len()))
			return nil
		default:
			c.errorf("Invalid choice. Try again.")
		}
	}
	return c.in.Err()
}

// selectStock lists the stocks and resolves a name or number.
func (c *Console) selectStock() (string, bool) {
	if c.Desk.Store.Len() == 0 {
		c.println("No stocks loaded.")
		return "", false
	}
	c.println(render.StockList(c.Desk.Stocks()))
	choice, ok := c.prompt("Select stock (name or number): ")
	if !ok || choice == "" {
		return "", false
	}
	sym, err := c.Desk.Store.Resolve(choice)
	if err != nil {
		c.errorf("Stock '%s' not found.", strings.ToUpper(choice))
		return "", false
	}
	return sym, true
}

func (c *Console) upload() {
	path, ok := c.prompt("Path to CSV file (blank to cancel): ")
	if !ok || path == "" {
		c.println("Upload cancelled.")
		return
	}
	if err := loader.Validate(path); err != nil {
		c.errorf("Validation failed: %v", err)
		return
	}
	sym := loader.SymbolFromPath(path)
	if c.Desk.Store.Has(sym) {
	loop:
		for {
			ans, ok := c.prompt(fmt.Sprintf("%s is already loaded. (R)eplace, (K)eep, (C)ancel: ", sym))
			if !ok {
				return
			}
			switch strings.ToUpper(ans) {
			case "R":
				break loop
			case "K":
				c.println("Kept existing stock.")
				return
			case "C":
				c.println("Upload cancelled.")
				return
			default:
				c.errorf("Invalid choice. Please enter R, K, or C.")
			}
		}
	}
	c.println(fmt.Sprintf("Uploading %s...", sym))
	series, err := c.Desk.Upload(path)
	if err != nil {
		c.errorf("Error reading uploaded file: %v", err)
		return
	}
	c.successf("Successfully uploaded %s, %d rows.", series.Symbol, series.Len())
}

func (c *Console) reload() {
	sym, ok := c.selectStock()
	if !ok {
		return
	}
	series, err := c.Desk.ReloadSymbol(sym)
	if err != nil {
		c.errorf("Error: %v", err)
		return
	}
	c.successf("Reloaded %s, %d rows", series.Symbol, series.Len())
}

func (c *Console) preview() {
	sym, ok := c.selectStock()
	if !ok {
		return
	}
	series, err := c.Desk.Series(sym)
	if err != nil {
		c.errorf("Error: %v", err)
		return
	}
	c.println(render.Preview(series, c.Desk.Defaults.PreviewRows))
}

func (c *Console) summary() {
	sym, ok := c.selectStock()
	if !ok {
		return
	}
	s, err := c.Desk.Summary(recorder.SourceConsole, sym, 0)
	if err != nil {
		c.errorf("An error occurred while calculating summary: %s", c.Desk.Explain(err))
		return
	}
	c.println(render.Summary(s))

	ans, ok := c.prompt("Do you want to save this summary? (y/n): ")
	if !ok || strings.ToLower(ans) != "y" {
		return
	}
	path, err := c.Desk.SaveSummary(s)
	if err != nil {
		c.errorf("Error saving summary: %v", err)
		return
	}
	c.successf("Success! Saved to: %s", path)
}

func (c *Console) price() {
	sym, ok := c.selectStock()
	if !ok {
		return
	}
	date, ok := c.prompt("Enter date month/day/year (e.g., 12/12/2025): ")
	if !ok {
		return
	}
	c.println(strings.Repeat("-", 30))
	price, err := c.Desk.Price(sym, date)
	if err != nil {
		c.errorf("%s", c.Desk.Explain(err))
	} else {
		c.println(render.Price(sym, date, price))
	}
	c.println(strings.Repeat("-", 30))
}

func (c *Console) watchlist() {
	for {
		c.println(titleStyle.Render(strings.Repeat("=", 50)))
		c.println(titleStyle.Render("             MY WATCHLIST DASHBOARD"))
		c.println(titleStyle.Render(strings.Repeat("=", 50)))
		lines := c.Desk.WatchlistLines()
		if len(lines) == 0 {
			c.println(dimStyle.Render("(Your watchlist is empty)"))
		}
		for _, l := range lines {
			c.println(l)
		}
		c.println(strings.Repeat("-", 50))
		ans, ok := c.prompt("Options: (A)dd stock, (R)emove stock, (B)ack to Main Menu: ")
		if !ok {
			return
		}
		switch strings.ToUpper(ans) {
		case "A":
			name, ok := c.prompt("Stock name to add: ")
			if !ok {
				return
			}
			if err := c.Desk.Watchlist.Add(name, c.Desk.Store); err != nil {
				c.errorf("Error: %v", err)
				continue
			}
			c.successf("Added %s.", strings.ToUpper(name))
		case "R":
			name, ok := c.prompt("Stock name to remove: ")
			if !ok {
				return
			}
			if err := c.Desk.Watchlist.Remove(name); err != nil {
				c.errorf("Error: %v", err)
				continue
			}
			c.successf("Removed %s.", strings.ToUpper(name))
		case "B":
			return
		default:
			c.errorf("Invalid choice.")
		}
	}
}

func (c *Console) signals() {
	sym, ok := c.selectStock()
	if !ok {
		return
	}
	report, err := c.Desk.Signals(recorder.SourceConsole, sym, 0, 0)
	if err != nil {
		c.errorf("%s", c.Desk.Explain(err))
		return
	}
	c.println(render.Signals(report))
}

func (c *Console) performance() {
	sym, ok := c.selectStock()
	if !ok {
		return
	}
	buy, ok := c.prompt("Enter buy date: ")
	if !ok {
		return
	}
	sell, ok := c.prompt("Enter sell date: ")
	if !ok {
		return
	}
	p, err := c.Desk.Trade(recorder.SourceConsole, sym, buy, sell)
	if err != nil {
		c.errorf("Error: %s", c.Desk.Explain(err))
		return
	}
	c.println(render.Performance(p))
}
