package postgresql

// Schema creates every table the portal reads. Statements are idempotent so
// seeding can run against an existing database.
const Schema = `
CREATE TABLE IF NOT EXISTS members (
    id         INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    role       TEXT NOT NULL,
    branch     TEXT NOT NULL,
    year       INTEGER NOT NULL CHECK (year BETWEEN 1 AND 4),
    email      TEXT NOT NULL UNIQUE,
    skills     TEXT[] NOT NULL DEFAULT '{}',
    join_date  TEXT NOT NULL,
    bio        TEXT NOT NULL DEFAULT '',
    image      TEXT
);

CREATE TABLE IF NOT EXISTS member_credentials (
    member_id     INTEGER PRIMARY KEY REFERENCES members(id),
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
    id          INTEGER PRIMARY KEY,
    title       TEXT NOT NULL,
    date        TEXT NOT NULL,
    time        TEXT NOT NULL,
    description TEXT NOT NULL,
    status      TEXT NOT NULL CHECK (status IN ('upcoming', 'ongoing', 'completed')),
    category    TEXT NOT NULL,
    attendees   INTEGER NOT NULL DEFAULT 0,
    location    TEXT NOT NULL,
    image       TEXT
);

CREATE TABLE IF NOT EXISTS student_rankings (
    id           INTEGER PRIMARY KEY,
    rank         INTEGER NOT NULL,
    name         TEXT NOT NULL,
    branch       TEXT NOT NULL,
    year         INTEGER NOT NULL,
    points       INTEGER NOT NULL,
    achievements INTEGER NOT NULL,
    contests     INTEGER NOT NULL,
    level        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS branch_rankings (
    id             INTEGER PRIMARY KEY,
    rank           INTEGER NOT NULL,
    branch         TEXT NOT NULL,
    total_members  INTEGER NOT NULL,
    total_points   INTEGER NOT NULL,
    average_points INTEGER NOT NULL,
    achievements   INTEGER NOT NULL,
    contests       INTEGER NOT NULL,
    level          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS year_rankings (
    id             INTEGER PRIMARY KEY,
    rank           INTEGER NOT NULL,
    year           INTEGER NOT NULL,
    total_members  INTEGER NOT NULL,
    total_points   INTEGER NOT NULL,
    average_points INTEGER NOT NULL,
    achievements   INTEGER NOT NULL,
    contests       INTEGER NOT NULL,
    level          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS site_content (
    key  TEXT PRIMARY KEY,
    body JSONB NOT NULL
);
`
