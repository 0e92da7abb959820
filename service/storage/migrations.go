package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    run_id              INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid            TEXT UNIQUE NOT NULL,
    boundary            TEXT NOT NULL,
    role_name           TEXT NOT NULL,
    started_at          DATETIME NOT NULL,
    finished_at         DATETIME NOT NULL,
    accounts_total      INTEGER DEFAULT 0,
    accounts_accessible INTEGER DEFAULT 0,
    compliant_roles     INTEGER DEFAULT 0,
    total_records       INTEGER DEFAULT 0,
    interrupted         INTEGER DEFAULT 0,
    cli_version         TEXT,
    created_at          DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_boundary ON runs(boundary);

CREATE TABLE IF NOT EXISTS run_records (
    record_id    INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id       INTEGER NOT NULL,
    account_id   TEXT NOT NULL,
    account_name TEXT NOT NULL,
    role_name    TEXT NOT NULL,
    status       TEXT NOT NULL,
    total_roles  INTEGER DEFAULT 0,
    created_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_records_run ON run_records(run_id);
CREATE INDEX IF NOT EXISTS idx_run_records_account ON run_records(account_id);
CREATE INDEX IF NOT EXISTS idx_run_records_status ON run_records(status);
`
