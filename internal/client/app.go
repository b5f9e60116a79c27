package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	// ErrUnknownCommand is returned for subcommands the client does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command gets the wrong arguments.
	ErrUsage = errors.New("wrong arguments")
)

const usage = `usage: farm-client [flags] <command> [args]

commands:
  register <login>                          create an account (password is prompted)
  login <login>                             log in (password is prompted)
  logout                                    forget the saved session
  submit-reading [flags]                    encrypt and submit a sensor reading
  request-twin <twin-id> <reading-id>...    fold readings into a twin update
  twin <twin-id>                            show a twin
  request-recommendation <twin-id> <reading-id>...
  recommendation <twin-id>                  show a recommendation
  aggregate-add <key> <value>               add an encrypted value to an aggregate
  aggregate-reveal <key>                    request decryption of an aggregate
  aggregate-keys                            list aggregate keys
  events [-after N] [-limit N]              list contract events
  add-sensor-record [flags]                 store a plaintext sensor record
  add-advice-record [flags]                 store a plaintext advice record
  records                                   list sensor and advice records
  dashboard                                 open the records dashboard
  version                                   show the contract host version
`

// VersionSource reports the contract host version.
type VersionSource interface {
	GetVersion(ctx context.Context) (string, error)
}

// Dashboard runs the interactive records dashboard.
type Dashboard interface {
	Dashboard(ctx context.Context) error
}

// App dispatches one CLI command per run.
type App struct {
	services  *service.ClientServices
	version   VersionSource
	dashboard Dashboard
	logger    *logger.Logger

	out          io.Writer
	readPassword func() (string, error)
	now          func() time.Time
}

func NewApp(services *service.ClientServices, version VersionSource, dashboard Dashboard, log *logger.Logger) *App {
	return &App{
		services:     services,
		version:      version,
		dashboard:    dashboard,
		logger:       log,
		out:          os.Stdout,
		readPassword: promptPassword,
		now:          time.Now,
	}
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return string(raw), nil
}

// Run executes the command in args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]

	l := a.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("command", cmd)
	})
	ctx = l.WithContext(ctx)

	switch cmd {
	case "register", "login":
		return a.authenticate(ctx, cmd, rest)
	case "logout":
		return a.services.AuthService.Logout(ctx)
	case "version":
		v, err := a.version.GetVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, v)
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}

	handler, ok := a.commands()[cmd]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	if _, err := a.services.AuthService.RestoreSession(ctx); err != nil {
		return err
	}

	if err := handler(ctx, rest); err != nil {
		l.Err(err).Msg("command failed")
		return err
	}
	return nil
}

type command func(ctx context.Context, args []string) error

func (a *App) commands() map[string]command {
	return map[string]command{
		"submit-reading":         a.submitReading,
		"request-twin":           a.requestTwin,
		"twin":                   a.twin,
		"request-recommendation": a.requestRecommendation,
		"recommendation":         a.recommendation,
		"aggregate-add":          a.aggregateAdd,
		"aggregate-reveal":       a.aggregateReveal,
		"aggregate-keys":         a.aggregateKeys,
		"events":                 a.events,
		"add-sensor-record":      a.addSensorRecord,
		"add-advice-record":      a.addAdviceRecord,
		"records":                a.records,
		"dashboard":              a.openDashboard,
	}
}

func (a *App) authenticate(ctx context.Context, cmd string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s <login>", ErrUsage, cmd)
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}

	user := models.User{Login: args[0], Password: password}

	var session models.Session
	if cmd == "register" {
		session, err = a.services.AuthService.Register(ctx, user)
	} else {
		session, err = a.services.AuthService.Login(ctx, user)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s (user %d)\n", session.Login, session.UserID)
	return nil
}

func (a *App) print(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(raw))
	return err
}

func (a *App) submitReading(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit-reading", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var r models.PlainReading
	fs.Uint64Var(&r.Timestamp, "timestamp", 0, "unix time of the reading, now when 0")
	fs.Uint64Var(&r.Temperature, "temperature", 0, "temperature")
	fs.Uint64Var(&r.Humidity, "humidity", 0, "relative humidity")
	fs.Uint64Var(&r.CO2, "co2", 0, "CO2 ppm")
	fs.Uint64Var(&r.Light, "light", 0, "light level")
	fs.Uint64Var(&r.SoilMoisture, "soil", 0, "soil moisture")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if r.Timestamp == 0 {
		r.Timestamp = uint64(a.now().Unix())
	}

	reading, err := a.services.FarmService.SubmitReading(ctx, r)
	if err != nil {
		return err
	}
	return a.print(reading)
}

// foldArgs parses "<twin-id> <reading-id>...".
func foldArgs(cmd string, args []string) (int64, []int64, error) {
	if len(args) < 2 {
		return 0, nil, fmt.Errorf("%w: %s <twin-id> <reading-id>...", ErrUsage, cmd)
	}

	ids := make([]int64, len(args))
	for i, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %q is not an id", ErrUsage, arg)
		}
		ids[i] = id
	}
	return ids[0], ids[1:], nil
}

func twinArg(cmd string, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s <twin-id>", ErrUsage, cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an id", ErrUsage, args[0])
	}
	return id, nil
}

func (a *App) requestTwin(ctx context.Context, args []string) error {
	twinID, readingIDs, err := foldArgs("request-twin", args)
	if err != nil {
		return err
	}
	receipt, err := a.services.FarmService.RequestTwinUpdate(ctx, twinID, readingIDs)
	if err != nil {
		return err
	}
	return a.print(receipt)
}

func (a *App) twin(ctx context.Context, args []string) error {
	twinID, err := twinArg("twin", args)
	if err != nil {
		return err
	}
	twin, err := a.services.FarmService.GetTwin(ctx, twinID)
	if err != nil {
		return err
	}
	return a.print(twin)
}

func (a *App) requestRecommendation(ctx context.Context, args []string) error {
	twinID, readingIDs, err := foldArgs("request-recommendation", args)
	if err != nil {
		return err
	}
	receipt, err := a.services.FarmService.RequestRecommendation(ctx, twinID, readingIDs)
	if err != nil {
		return err
	}
	return a.print(receipt)
}

func (a *App) recommendation(ctx context.Context, args []string) error {
	twinID, err := twinArg("recommendation", args)
	if err != nil {
		return err
	}
	rec, err := a.services.FarmService.GetRecommendation(ctx, twinID)
	if err != nil {
		return err
	}
	return a.print(rec)
}

func (a *App) aggregateAdd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: aggregate-add <key> <value>", ErrUsage)
	}
	value, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a non-negative integer", ErrUsage, args[1])
	}

	agg, err := a.services.FarmService.AddToAggregate(ctx, args[0], value)
	if err != nil {
		return err
	}
	return a.print(agg)
}

func (a *App) aggregateReveal(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: aggregate-reveal <key>", ErrUsage)
	}
	receipt, err := a.services.FarmService.RequestAggregateReveal(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(receipt)
}

func (a *App) aggregateKeys(ctx context.Context, _ []string) error {
	keys, err := a.services.FarmService.AggregateKeys(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, strings.Join(keys, "\n"))
	return nil
}

func (a *App) events(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	fs.SetOutput(a.out)
	after := fs.Int64("after", 0, "only events with a greater sequence number")
	limit := fs.Int("limit", 0, "page size, server default when 0")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	events, err := a.services.FarmService.Events(ctx, *after, *limit)
	if err != nil {
		return err
	}
	return a.print(events)
}

func (a *App) addSensorRecord(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-sensor-record", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var rec models.SensorRecord
	fs.StringVar(&rec.Location, "location", "", "where the reading was taken")
	fs.Float64Var(&rec.Temperature, "temperature", 0, "temperature")
	fs.Float64Var(&rec.Humidity, "humidity", 0, "relative humidity")
	fs.Float64Var(&rec.CO2, "co2", 0, "CO2 ppm")
	fs.Float64Var(&rec.Light, "light", 0, "light level")
	fs.Float64Var(&rec.SoilMoisture, "soil", 0, "soil moisture")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	stored, err := a.services.RecordsService.AddSensorRecord(ctx, rec)
	if err != nil {
		return err
	}
	return a.print(stored)
}

func (a *App) addAdviceRecord(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-advice-record", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var rec models.AdviceRecord
	fs.Int64Var(&rec.TwinID, "twin", 0, "twin the advice is for")
	fs.StringVar(&rec.Watering, "watering", "", "watering advice")
	fs.StringVar(&rec.Nutrients, "nutrients", "", "nutrient advice")
	fs.StringVar(&rec.LightAdjust, "light", "", "light adjustment")
	fs.StringVar(&rec.Note, "note", "", "free text")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	stored, err := a.services.RecordsService.AddAdviceRecord(ctx, rec)
	if err != nil {
		return err
	}
	return a.print(stored)
}

func (a *App) records(ctx context.Context, _ []string) error {
	return a.print(struct {
		Sensors []models.SensorRecord `json:"sensors"`
		Advice  []models.AdviceRecord `json:"advice"`
	}{
		Sensors: a.services.RecordsService.SensorRecords(ctx),
		Advice:  a.services.RecordsService.AdviceRecords(ctx),
	})
}

func (a *App) openDashboard(ctx context.Context, _ []string) error {
	return a.dashboard.Dashboard(ctx)
}
