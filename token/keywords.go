package token

import "strings"

// byLetter holds, for each possible leading letter of an identifier-shaped
// lexeme, the keywords that can begin with it, ordered by how often real
// SQL-92 statements use them rather than alphabetically. A linear scan down
// a short, frequency-ordered slice beats a hash lookup for this corpus:
// most scanned words are either very common keywords (found in the first
// one or two comparisons) or not keywords at all (the whole slice is
// scanned once and rejected, same as a map would require).
var byLetter = map[byte][]Symbol{
	'a': {AS, AND, ALL, ALTER, ADD, ANY, AT, AVG, ACTION, AUTHORIZATION},
	'b': {BY, BETWEEN, BOTH, BIT, BIT_LENGTH},
	'c': {COLUMN, CREATE, CHECK, CHAR, CASE, COUNT, COMMIT, CASCADE, CASCADED,
		CHARACTER, CHAR_LENGTH, CHARACTER_LENGTH, COALESCE, COLLATE,
		COLLATION, CONSTRAINT, CONVERT, CROSS, CURRENT_DATE, CURRENT_TIME,
		CURRENT_TIMESTAMP, CURRENT_USER},
	'd': {DEFAULT, DELETE, DISTINCT, DROP, DATE, DAY, DEC, DECIMAL, DOMAIN, DOUBLE},
	'e': {END, ELSE, ESCAPE, EXISTS, EXTRACT, EXCEPT},
	'f': {FROM, FOR, FOREIGN, FULL, FLOAT},
	'g': {GROUP, GRANT, GLOBAL},
	'h': {HAVING, HOUR},
	'i': {IN, IS, INTO, INSERT, INT, INTEGER, INNER, INTERVAL, INTERSECT},
	'j': {JOIN},
	'k': {KEY},
	'l': {LIKE, LEFT, LOCAL, LEADING},
	'm': {MATCH, MAX, MIN, MINUTE, MONTH},
	'n': {NOT, NULL, NUMERIC, NATIONAL, NATURAL, NCHAR, NO, NULLIF},
	'o': {ON, OR, OPTION, OUTER, OVERLAPS, OCTET_LENGTH},
	'p': {PRIMARY, PRECISION, PARTIAL, POSITION, PRIVILEGES, PUBLIC},
	'r': {REFERENCES, RIGHT, RESTRICT, ROLLBACK, REAL},
	's': {SELECT, SET, SCHEMA, SECOND, SESSION_USER, SMALLINT, SOME, SUBSTRING,
		SUM, SYSTEM_USER},
	't': {TABLE, THEN, TIME, TIMESTAMP, TO, TEMPORARY, TRAILING, TRANSLATE,
		TRANSLATION, TRIM},
	'u': {UPDATE, UNIQUE, UNION, USING, USER, UPPER, USAGE},
	'v': {VALUES, VALUE, VARCHAR, VARYING, VIEW},
	'w': {WHERE, WHEN, WITH, WORK},
	'y': {YEAR},
	'z': {ZONE},
}

// LookupKeyword returns the Symbol for word if it is a reserved SQL-92
// keyword (case-insensitive), or IDENTIFIER if it is not.
func LookupKeyword(word string) Symbol {
	if len(word) == 0 {
		return IDENTIFIER
	}
	lead := word[0]
	if lead >= 'A' && lead <= 'Z' {
		lead += 'a' - 'A'
	}
	candidates, ok := byLetter[lead]
	if !ok {
		return IDENTIFIER
	}
	for _, sym := range candidates {
		if strings.EqualFold(spellings[sym], word) {
			return sym
		}
	}
	return IDENTIFIER
}
