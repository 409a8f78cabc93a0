// Package schemac compiles GraphQL schema-definition-language declarations
// into validated, queryable schemas.
package schemac

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/graphty/schemac/decl"
	"github.com/graphty/schemac/schema"
)

// Compiler wraps the schema package's compilation and extension entry points
// with logging. The zero Config is usable.
type Compiler struct {
	config *Config
	logger logrus.FieldLogger
}

func New(cfg *Config) *Compiler {
	return &Compiler{
		config: cfg,
		logger: cfg.logger(),
	}
}

// Compile validates the declarations and assembles a schema. The returned
// schema may carry errors; callers must check Errors before using it for
// execution. A non-nil error return means compilation itself aborted.
func (c *Compiler) Compile(decls []decl.Declaration) (*schema.Schema, error) {
	s, err := schema.Compile(decls)
	if err != nil {
		return nil, errors.Wrap(err, "error compiling schema")
	}
	c.logger.WithFields(logrus.Fields{
		"types":  len(s.Types),
		"errors": len(s.Errors),
	}).Info("compiled schema")
	return s, nil
}

// Extend applies schema extensions to an error-free compiled schema.
func (c *Compiler) Extend(s *schema.Schema, exts []*decl.SchemaExtension) (*schema.Schema, error) {
	extended, err := schema.Extend(s, exts)
	if err != nil {
		return nil, errors.Wrap(err, "error extending schema")
	}
	c.logger.WithFields(logrus.Fields{
		"extensions": len(exts),
		"errors":     len(extended.Errors),
	}).Info("extended schema")
	return extended, nil
}
