// Package setup wires the armada log channels at process startup.
//
// The library attaches nothing on its own; an application that embeds
// armada as a library configures logging however it likes. The armada
// command calls the entry points here once, early in main:
//
//	reg := logger.NewRegistry()
//	session, err := setup.Primary(reg, setup.PrimaryOptions{UseSyslog: cfg.Syslog})
//	...
//	err = setup.RemoteShell(reg)
//	err = setup.CloudAPI(reg)
//
// Primary configures the application channel: a rotating debug file,
// the console at Info floor, an in-memory session buffer (returned to
// the caller for crash reports), and optionally syslog. RemoteShell
// and CloudAPI each configure a dedicated channel with its own rotating
// debug file for third-party client libraries.
//
// All log files live under the armada directory ($ARMADA_DIR, default
// ~/.armada), capped at 1 MiB with two rotated backups each.
package setup
