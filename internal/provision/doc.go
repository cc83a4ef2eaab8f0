// Package provision sequences the container's startup provisioning.
//
// A Builder runs the single-pass orchestration the entrypoint exists
// for:
//
//  1. Parse every entry of the sites section into a site, in document
//     order.
//  2. Append each site's database init SQL to the engine's init file.
//  3. Resolve the root credential and run the database init process.
//  4. Write a vhost conf per site, first-run-wins, and synthesize the
//     catch-all default conf if none exists.
//  5. Launch the process supervisor detached.
//  6. Bootstrap WordPress in every site folder that does not exist yet.
//
// The flow is strictly sequential with one seam: the supervisor keeps
// running while WordPress setup proceeds, and the caller blocks on its
// handle afterwards. All external processes go through the executor
// package, so tests drive the Builder with a mock launcher and temp
// directories.
//
// Failure policy follows the entrypoint's role: a config that cannot
// resolve a root password and a non-zero exit from database init are
// fatal; a failing per-site setup script is logged and skipped so one
// broken site does not take down the others.
package provision
