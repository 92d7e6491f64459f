package catalog

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	path     string
	codec    Codec
	logger   *zerolog.Logger
	autoLoad bool
}

func defaults() *options {
	return &options{
		path:     constants.DefaultCatalogFile,
		codec:    QuotedCodec{},
		logger:   logging.Default(),
		autoLoad: true,
	}
}

// WithPath sets the backing file path.
func WithPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.path = path
		}
	}
}

// WithCodec sets the row codec used for load and save.
func WithCodec(codec Codec) Option {
	return func(o *options) {
		if codec != nil {
			o.codec = codec
		}
	}
}

// WithLogger sets the logger that receives load/save reports and warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAutoLoad controls whether New loads the backing file.
func WithAutoLoad(autoLoad bool) Option {
	return func(o *options) {
		o.autoLoad = autoLoad
	}
}
