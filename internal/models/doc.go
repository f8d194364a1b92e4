// Package models defines the core domain models for the slicing-pie ledger.
//
// # Models
//
//   - Founder: a founding team member with current compensation terms
//   - Category: one of the four fixed contribution categories and its
//     conversion configuration (multiplier, commission)
//   - LedgerEntry: an immutable contribution fact with point-in-time
//     snapshots of the founder and category configuration
//   - User: a registered account, used for authentication and the
//     configuration-mutation capability
//
// # Design Principles
//
//  1. **Snapshot on write**: a LedgerEntry carries copies of the founder's
//     salary terms and the category's multiplier/commission as they existed
//     at creation. Later configuration edits never touch these fields, so
//     historical slice values stay stable under reconfiguration.
//  2. **Closed category set**: CategoryID is a fixed enumeration (cash, time,
//     revenue, expenses). Categories are configured, never created or deleted.
//  3. **Avoid circular references**: entries reference founders and categories
//     by ID string, never by pointer. The foreign keys exist for filtering and
//     cascade deletion only; calculation uses the embedded snapshots.
//  4. **Derived values are not models**: per-founder calculations and venture
//     totals live in the engine package and are recomputed on every read.
package models
