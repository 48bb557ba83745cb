package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/uzdict/dictadmin/internal/api"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/config"
	"github.com/uzdict/dictadmin/internal/forms"
	"github.com/uzdict/dictadmin/internal/listctl"
	"github.com/uzdict/dictadmin/internal/session"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openSession() (*session.Session, error) {
	path := sessionFile
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("session.DefaultPath > %w", err)
		}
	}
	return session.Open(path)
}

// clientSet bundles everything a catalog command needs.
type clientSet struct {
	config    *config.Config
	session   *session.Session
	client    *api.Client
	service   *catalog.Service
	submitter *forms.Submitter
}

func newClientSet() (*clientSet, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	sess, err := openSession()
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	client := api.NewClient(cfg.Server.BaseURL, sess)
	submitter, err := forms.NewSubmitter(client)
	if err != nil {
		return nil, fmt.Errorf("forms.NewSubmitter > %w", err)
	}
	return &clientSet{
		config:    cfg,
		session:   sess,
		client:    client,
		service:   catalog.NewService(client),
		submitter: submitter,
	}, nil
}

func requireAuth(set *clientSet) error {
	if !set.session.Authenticated() {
		return fmt.Errorf("not authenticated. Run `dictadmin login` first")
	}
	return nil
}

// SortKeyFlag is a pflag.Value for the list sort strategy.
type SortKeyFlag listctl.SortKey

func (f *SortKeyFlag) Set(val string) error {
	for _, key := range listctl.AllSortKeys {
		if val == string(key) {
			*f = SortKeyFlag(key)
			return nil
		}
	}
	return fmt.Errorf("invalid sort key: %s", val)
}

func (f SortKeyFlag) String() string {
	return string(f)
}

func (f *SortKeyFlag) Type() string {
	return "SortKey"
}

// DictionaryTypeFlag is a pflag.Value for the dictionary type.
type DictionaryTypeFlag catalog.DictionaryType

func (f *DictionaryTypeFlag) Set(val string) error {
	for _, t := range catalog.AllDictionaryTypes {
		if val == string(t) {
			*f = DictionaryTypeFlag(t)
			return nil
		}
	}
	return fmt.Errorf("invalid dictionary type: %s", val)
}

func (f DictionaryTypeFlag) String() string {
	return string(f)
}

func (f *DictionaryTypeFlag) Type() string {
	return "DictionaryType"
}

var (
	_ pflag.Value = (*SortKeyFlag)(nil)
	_ pflag.Value = (*DictionaryTypeFlag)(nil)
)

// listFlags are the shared flags of every `list` subcommand.
type listFlags struct {
	search   string
	sort     SortKeyFlag
	page     int
	pageSize int
}

func (f *listFlags) register(flags *pflag.FlagSet) {
	f.sort = SortKeyFlag(listctl.SortByCreated)
	flags.StringVar(&f.search, "search", "", "filter by a case-insensitive name substring")
	flags.Var(&f.sort, "sort", fmt.Sprintf("Sort order. Possible values are %v", listctl.AllSortKeys))
	flags.IntVar(&f.page, "page", 1, "page number")
	flags.IntVar(&f.pageSize, "page-size", 0, "items per page (0 uses the configured default)")
}

// buildList loads already-fetched items into a list controller and
// applies the shared list flags.
func buildList[T listctl.Entity](cmd *cobra.Command, set *clientSet, flags listFlags, items []T) *listctl.List[T] {
	list := listctl.New[T]()
	_ = list.Load(cmd.Context(), func(context.Context) ([]T, error) {
		return items, nil
	})

	size := flags.pageSize
	if size <= 0 {
		size = set.config.List.PageSize
	}
	list.SetPageSize(size)
	list.SortBy(listctl.SortKey(flags.sort))
	if flags.search != "" {
		list.Search(flags.search)
	}
	list.SetPage(flags.page)
	return list
}

func printTable(headers []string, rows [][]string) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(writer, header.Sprint(strings.Join(headers, "\t")))
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	_ = writer.Flush()
}

func printFooter[T listctl.Entity](list *listctl.List[T]) {
	fmt.Printf("page %d/%d (%d items", list.Page(), list.TotalPages(), len(list.Active()))
	if term := list.SearchTerm(); term != "" {
		fmt.Printf(", search %q", term)
	}
	fmt.Println(")")
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func refLabel(ref catalog.Ref) string {
	if ref.Name != "" {
		return ref.Name
	}
	return orDash(ref.ID)
}
