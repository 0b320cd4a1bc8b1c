// ABOUTME: Admin CLI for the roster HTTP API
// ABOUTME: Manages accounts and employee records with JWT authentication

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

const banner = `
                 _                          _           _
 _ __ ___  ___| |_ ___ _ __      __ _  __| |_ __ ___ (_)_ __
| '__/ _ \/ __| __/ _ \ '__|____/ _' |/ _' | '_ ' _ \| | '_ \
| | | (_) \__ \ ||  __/ | |_____| (_| | (_| | | | | | | | | | |
|_|  \___/|___/\__\___|_|        \__,_|\__,_|_| |_| |_|_|_| |_|
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	baseURL := os.Getenv("ROSTER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	token := os.Getenv("ROSTER_TOKEN")

	c := &client{baseURL: baseURL, token: token}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "me":
		err = cmdMe(c)
	case "signup":
		err = cmdSignup(c, args)
	case "login":
		err = cmdLogin(c, args)
	case "employees":
		err = cmdEmployees(c, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: roster-admin <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  me                       Show the account behind your token")
	fmt.Println("  signup                   Register a new account")
	fmt.Println("  login                    Log in and print a token")
	fmt.Println("  employees                List all employee records")
	fmt.Println("  employees list           List all employee records")
	fmt.Println("  employees get <id>       Show one employee record")
	fmt.Println("  employees delete <id>    Delete an employee record")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  ROSTER_URL     Server base URL (default: http://localhost:3000)")
	fmt.Println("  ROSTER_TOKEN   JWT authentication token")
	fmt.Println()
	yellow.Println("Examples:")
	fmt.Println("  roster-admin signup --name 'Jane Doe' --email jane@example.com --password secret1")
	fmt.Println("  export ROSTER_TOKEN=\"eyJhbG...\"")
	fmt.Println("  roster-admin employees")
	fmt.Println()
}

// client is a thin JSON client for the roster API.
type client struct {
	baseURL string
	token   string
}

// do sends a request and decodes the response body into out when the
// status matches wantStatus. Other statuses are reported with the server's
// message field when present.
func (c *client) do(method, path string, body, out any, wantStatus int) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var failure struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&failure) == nil && failure.Message != "" {
			return fmt.Errorf("%s (status %d)", failure.Message, resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func cmdMe(c *client) error {
	if c.token == "" {
		return fmt.Errorf("ROSTER_TOKEN is not set")
	}

	var profile struct {
		User struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"emailid"`
		} `json:"user"`
	}
	if err := c.do(http.MethodGet, "/api/auth/profile", nil, &profile, http.StatusOK); err != nil {
		return err
	}

	fmt.Printf("ID:    %s\n", profile.User.ID)
	fmt.Printf("Name:  %s\n", profile.User.Name)
	fmt.Printf("Email: %s\n", profile.User.Email)
	return nil
}

func cmdSignup(c *client, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 6 characters)")
	fs.Parse(args)

	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("--name, --email, and --password are required")
	}

	body := map[string]string{
		"name":     *name,
		"emailid":  *email,
		"password": *password,
	}
	var result struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, "/api/auth/signup", body, &result, http.StatusCreated); err != nil {
		return err
	}

	color.Green("Registered %s\n", *email)
	fmt.Printf("ID:    %s\n", result.ID)
	fmt.Printf("Token: %s\n", result.Token)
	return nil
}

func cmdLogin(c *client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("--email and --password are required")
	}

	body := map[string]string{"emailid": *email, "password": *password}
	var result struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, "/api/auth/login", body, &result, http.StatusOK); err != nil {
		return err
	}

	fmt.Println(result.Token)
	return nil
}

// employeeRow is the subset of an employee record shown in tables.
type employeeRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
	City     string `json:"city"`
	Status   string `json:"employeeStatus"`
}

func cmdEmployees(c *client, args []string) error {
	if c.token == "" {
		return fmt.Errorf("ROSTER_TOKEN is not set")
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		return cmdEmployeesList(c)
	case "get":
		if len(args) < 1 {
			return fmt.Errorf("usage: roster-admin employees get <id>")
		}
		return cmdEmployeesGet(c, args[0])
	case "delete":
		if len(args) < 1 {
			return fmt.Errorf("usage: roster-admin employees delete <id>")
		}
		return cmdEmployeesDelete(c, args[0])
	default:
		return fmt.Errorf("unknown employees subcommand: %s", sub)
	}
}

func cmdEmployeesList(c *client) error {
	var rows []employeeRow
	if err := c.do(http.MethodGet, "/api/users", nil, &rows, http.StatusOK); err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No employee records.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tJOB TITLE\tCITY\tSTATUS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.ID, row.Name, row.JobTitle, row.City, row.Status)
	}
	return w.Flush()
}

func cmdEmployeesGet(c *client, id string) error {
	var rec map[string]any
	if err := c.do(http.MethodGet, "/api/users/"+id, nil, &rec, http.StatusOK); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func cmdEmployeesDelete(c *client, id string) error {
	if err := c.do(http.MethodDelete, "/api/users/"+id, nil, nil, http.StatusOK); err != nil {
		return err
	}

	color.Green("Deleted %s\n", id)
	return nil
}
