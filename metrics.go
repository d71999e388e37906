/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import "github.com/prometheus/client_golang/prometheus"

var (
	TemplatesParsedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ipfix",
		Subsystem: "template_engine",
		Name:      "templates_parsed_total",
		Help:      "Total number of templates successfully parsed, by type",
	}, []string{"type"})

	ParseErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ipfix",
		Subsystem: "template_engine",
		Name:      "parse_errors_total",
		Help:      "Total number of template parse failures, by error kind",
	}, []string{"kind"})

	OptionsClassifiedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ipfix",
		Subsystem: "template_engine",
		Name:      "options_classified_total",
		Help:      "Total number of Options Template subtype matches, by subtype",
	}, []string{"subtype"})

	IEBindingsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ipfix",
		Subsystem: "template_engine",
		Name:      "ie_bindings_total",
		Help:      "Total number of calls to BindInformationElements",
	})
)
