package provision

import (
	"os"

	"github.com/songmash/single-container-wordpress/internal/apache"
	"github.com/songmash/single-container-wordpress/internal/config"
	"github.com/songmash/single-container-wordpress/internal/errors"
	"github.com/songmash/single-container-wordpress/internal/executor"
	"github.com/songmash/single-container-wordpress/internal/logger"
	"github.com/songmash/single-container-wordpress/internal/secret"
	"github.com/songmash/single-container-wordpress/internal/site"
)

// DBHost is the database address handed to WordPress setup. The engine
// runs in the same container, so it is always loopback.
const DBHost = "127.0.0.1"

// Environment variable names consumed by the external scripts.
const (
	EnvRootPassword = "MYSQL_ROOT_PASSWORD"
	EnvDBUser       = "WORDPRESS_DB_USER"
	EnvDBPassword   = "WORDPRESS_DB_PASSWORD"
	EnvDBName       = "WORDPRESS_DB_NAME"
	EnvDBHost       = "WORDPRESS_DB_HOST"
)

// Paths holds the filesystem locations the Builder writes to. All of
// them are fixed in the container image; tests inject temp directories.
type Paths struct {
	DocRoot        string // parent of per-site application folders
	SQLInitFile    string // database engine init SQL, append mode
	SitesDir       string // Apache sites-enabled directory
	SupervisorConf string // supervisor configuration file
}

// DefaultPaths returns the locations used in the container image.
func DefaultPaths() Paths {
	return Paths{
		DocRoot:        "/var/www/html",
		SQLInitFile:    "/docker-entrypoint-initdb.d/wordpress-db_init.sql",
		SitesDir:       apache.DefaultSitesDir,
		SupervisorConf: "/etc/supervisor/conf.d/supervisord.conf",
	}
}

// Commands names the external programs the Builder launches.
type Commands struct {
	DatabaseInit []string // database engine init script and args
	SiteSetup    []string // per-site WordPress setup script and args
	Supervisor   string   // process supervisor binary
}

// DefaultCommands returns the programs baked into the container image.
func DefaultCommands() Commands {
	return Commands{
		DatabaseInit: []string{"init_mariadb.sh", "mysqld"},
		SiteSetup:    []string{"setup-wp.sh", "apache2"},
		Supervisor:   "/usr/bin/supervisord",
	}
}

// Builder orchestrates the provisioning sequence for one loaded config.
type Builder struct {
	cfg      *config.Config
	paths    Paths
	commands Commands
	launcher executor.Launcher
	vhosts   *apache.Manager

	sites []*site.Site
}

// NewBuilder creates a Builder with the container image's default paths
// and commands.
func NewBuilder(cfg *config.Config, launcher executor.Launcher) *Builder {
	return NewBuilderWithPaths(cfg, launcher, DefaultPaths(), DefaultCommands())
}

// NewBuilderWithPaths creates a Builder with custom paths and commands.
func NewBuilderWithPaths(cfg *config.Config, launcher executor.Launcher, paths Paths, commands Commands) *Builder {
	return &Builder{
		cfg:      cfg,
		paths:    paths,
		commands: commands,
		launcher: launcher,
		vhosts:   apache.NewWithDir(paths.SitesDir),
	}
}

// Sites returns the parsed site list in config document order. Parsing
// happens once; generated credentials stay stable across the run.
func (b *Builder) Sites() []*site.Site {
	if b.sites == nil {
		b.sites = make([]*site.Site, 0, len(b.cfg.Sites))
		for _, entry := range b.cfg.Sites {
			b.sites = append(b.sites, site.New(b.paths.DocRoot, entry.Domain, entry.Options))
		}
	}
	return b.sites
}

// BuildLAMP configures the database engine and the web server: site
// databases, database init, and vhost files. Every step tolerates
// re-execution over persisted state.
func (b *Builder) BuildLAMP() error {
	sites := b.Sites()
	logger.InfoFields("configuring lamp stack", map[string]interface{}{"sites": len(sites)})

	if err := b.writeDBScripts(sites); err != nil {
		return err
	}

	rootPassword, err := ResolveRootPassword(b.cfg.Database)
	if err != nil {
		return err
	}
	if err := b.runDatabaseInit(rootPassword); err != nil {
		return err
	}

	return b.writeVHosts(sites)
}

// writeDBScripts appends every site's init SQL to the engine init file.
// The file is opened in append mode; the statements are conditional, so
// duplicates from container restarts are harmless.
func (b *Builder) writeDBScripts(sites []*site.Site) error {
	file, err := os.OpenFile(b.paths.SQLInitFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeDatabase, "failed to open database init file", err)
	}
	defer file.Close()

	for _, s := range sites {
		script, err := s.DBScript()
		if err != nil {
			return errors.WrapSite(errors.ErrCodeTemplate, s.Domain, "failed to render db script", err)
		}
		if _, err := file.WriteString(script); err != nil {
			return errors.WrapSite(errors.ErrCodeDatabase, s.Domain, "failed to write db script", err)
		}
		logger.Debug("queued database init for %s (db=%s user=%s)", s.Domain, s.DBName, s.DBUser)
	}

	return nil
}

// ResolveRootPassword resolves the database engine's root credential
// from the database section: a freshly generated password when
// root_password_random is set, else the configured root_password, else
// a configuration error.
func ResolveRootPassword(settings config.DatabaseSettings) (string, error) {
	if settings.RootPasswordRandom {
		return secret.RandomPassword(), nil
	}
	if settings.RootPassword != "" {
		return settings.RootPassword, nil
	}
	return "", errors.ErrNoRootPassword
}

// runDatabaseInit launches the database init process with the root
// password in its environment. A non-zero exit halts provisioning.
func (b *Builder) runDatabaseInit(rootPassword string) error {
	logger.Info("initializing database")

	cmd := b.commands.DatabaseInit
	err := b.launcher.Run(executor.Spec{
		Program: cmd[0],
		Args:    cmd[1:],
		Env:     map[string]string{EnvRootPassword: rootPassword},
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeDatabase, "error initializing the database", err)
	}

	logger.Info("database is set up")
	return nil
}

// writeVHosts writes one conf per site, never overwriting an existing
// file, and synthesizes the default catch-all conf if absent.
func (b *Builder) writeVHosts(sites []*site.Site) error {
	for _, s := range sites {
		content, err := s.VHostConfig()
		if err != nil {
			return errors.WrapSite(errors.ErrCodeTemplate, s.Domain, "failed to render vhost", err)
		}

		written, err := b.vhosts.WriteVHost(s.Domain, content)
		if err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, s.Domain, "failed to write vhost", err)
		}
		if written {
			logger.Debug("wrote vhost for %s", s.Domain)
		} else {
			logger.Debug("vhost for %s already present, keeping it", s.Domain)
		}
	}

	written, err := b.vhosts.EnsureDefault()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write default vhost", err)
	}
	if written {
		logger.Debug("synthesized default catch-all vhost")
	}

	return nil
}

// StartSupervisor launches the process supervisor detached and returns
// a handle the caller blocks on once per-site setup is done.
func (b *Builder) StartSupervisor() (executor.Handle, error) {
	logger.Info("starting supervisor with %s", b.paths.SupervisorConf)

	handle, err := b.launcher.Start(executor.Spec{
		Program: b.commands.Supervisor,
		Args:    []string{"-c", b.paths.SupervisorConf},
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeProcess, "failed to start supervisor", err)
	}
	return handle, nil
}

// SetupWordPress bootstraps the application folder of every site that
// does not have one yet. An existing folder means the site is already
// provisioned and is skipped. A failing setup script is logged and does
// not stop the remaining sites.
func (b *Builder) SetupWordPress() error {
	for _, s := range b.Sites() {
		if _, err := os.Stat(s.Folder); err == nil {
			logger.Debug("site folder %s exists, skipping setup", s.Folder)
			continue
		}

		if err := os.MkdirAll(s.Folder, 0755); err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, s.Domain, "failed to create site folder", err)
		}

		logger.Info("setting up wordpress for %s", s.Domain)
		cmd := b.commands.SiteSetup
		err := b.launcher.Run(executor.Spec{
			Program: cmd[0],
			Args:    cmd[1:],
			Dir:     s.Folder,
			Env: map[string]string{
				EnvDBUser:     s.DBUser,
				EnvDBPassword: s.DBPassword,
				EnvDBName:     s.DBName,
				EnvDBHost:     DBHost,
			},
		})
		if err != nil {
			logger.Error("wordpress setup failed for %s: %v", s.Domain, err)
		}
	}

	return nil
}
