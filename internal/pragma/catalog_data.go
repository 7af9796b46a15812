package pragma

// Built-in tables for a recent GHC. Hosts that know the exact compiler
// version should install their own catalog instead; these cover the common
// case where no live compiler is reachable.

var builtinExtensions = []string{
	"AllowAmbiguousTypes",
	"ApplicativeDo",
	"Arrows",
	"BangPatterns",
	"BinaryLiterals",
	"BlockArguments",
	"CApiFFI",
	"CPP",
	"ConstrainedClassMethods",
	"ConstraintKinds",
	"DataKinds",
	"DatatypeContexts",
	"DeepSubsumption",
	"DefaultSignatures",
	"DeriveAnyClass",
	"DeriveDataTypeable",
	"DeriveFoldable",
	"DeriveFunctor",
	"DeriveGeneric",
	"DeriveLift",
	"DeriveTraversable",
	"DerivingStrategies",
	"DerivingVia",
	"DisambiguateRecordFields",
	"DuplicateRecordFields",
	"EmptyCase",
	"EmptyDataDecls",
	"EmptyDataDeriving",
	"ExistentialQuantification",
	"ExplicitForAll",
	"ExplicitNamespaces",
	"ExtendedDefaultRules",
	"FieldSelectors",
	"FlexibleContexts",
	"FlexibleInstances",
	"ForeignFunctionInterface",
	"FunctionalDependencies",
	"GADTSyntax",
	"GADTs",
	"GHCForeignImportPrim",
	"GeneralizedNewtypeDeriving",
	"HexFloatLiterals",
	"ImplicitParams",
	"ImportQualifiedPost",
	"ImpredicativeTypes",
	"IncoherentInstances",
	"InstanceSigs",
	"InterruptibleFFI",
	"KindSignatures",
	"LambdaCase",
	"LexicalNegation",
	"LiberalTypeSynonyms",
	"LinearTypes",
	"MagicHash",
	"MonadComprehensions",
	"MonoLocalBinds",
	"MultiParamTypeClasses",
	"MultiWayIf",
	"NamedFieldPuns",
	"NamedWildCards",
	"NegativeLiterals",
	"NondecreasingIndentation",
	"NullaryTypeClasses",
	"NumDecimals",
	"NumericUnderscores",
	"OverloadedLabels",
	"OverloadedLists",
	"OverloadedRecordDot",
	"OverloadedRecordUpdate",
	"OverloadedStrings",
	"PackageImports",
	"ParallelListComp",
	"PartialTypeSignatures",
	"PatternGuards",
	"PatternSynonyms",
	"PolyKinds",
	"PostfixOperators",
	"QualifiedDo",
	"QuantifiedConstraints",
	"QuasiQuotes",
	"Rank2Types",
	"RankNTypes",
	"RebindableSyntax",
	"RecordWildCards",
	"RecursiveDo",
	"RoleAnnotations",
	"ScopedTypeVariables",
	"StandaloneDeriving",
	"StandaloneKindSignatures",
	"StarIsType",
	"StaticPointers",
	"Strict",
	"StrictData",
	"TemplateHaskell",
	"TemplateHaskellQuotes",
	"TransformListComp",
	"TupleSections",
	"TypeApplications",
	"TypeData",
	"TypeFamilies",
	"TypeFamilyDependencies",
	"TypeInType",
	"TypeOperators",
	"TypeSynonymInstances",
	"UnboxedSums",
	"UnboxedTuples",
	"UndecidableInstances",
	"UndecidableSuperClasses",
	"UnicodeSyntax",
	"UnliftedDatatypes",
	"UnliftedFFITypes",
	"UnliftedNewtypes",
	"ViewPatterns",
}

var builtinFlags = []string{
	"-Wall",
	"-Wall-missed-specialisations",
	"-Wambiguous-fields",
	"-Wcompat",
	"-Wcpp-undef",
	"-Wdeferred-out-of-scope-variables",
	"-Wdeferred-type-errors",
	"-Wdeprecated-flags",
	"-Wdeprecations",
	"-Wdodgy-exports",
	"-Wdodgy-foreign-imports",
	"-Wdodgy-imports",
	"-Wduplicate-exports",
	"-Wempty-enumerations",
	"-Werror",
	"-Weverything",
	"-Widentities",
	"-Wimplicit-prelude",
	"-Wincomplete-patterns",
	"-Wincomplete-record-updates",
	"-Wincomplete-uni-patterns",
	"-Winline-rule-shadowing",
	"-Wmissed-specialisations",
	"-Wmissing-deriving-strategies",
	"-Wmissing-export-lists",
	"-Wmissing-exported-signatures",
	"-Wmissing-fields",
	"-Wmissing-home-modules",
	"-Wmissing-import-lists",
	"-Wmissing-kind-signatures",
	"-Wmissing-local-signatures",
	"-Wmissing-methods",
	"-Wmissing-pattern-synonym-signatures",
	"-Wmissing-signatures",
	"-Wmonomorphism-restriction",
	"-Wname-shadowing",
	"-Wnoncanonical-monad-instances",
	"-Wnoncanonical-monoid-instances",
	"-Worphans",
	"-Woverflowed-literals",
	"-Woverlapping-patterns",
	"-Wpartial-fields",
	"-Wpartial-type-signatures",
	"-Wredundant-bang-patterns",
	"-Wredundant-constraints",
	"-Wredundant-record-wildcards",
	"-Wsemigroup",
	"-Wsimplifiable-class-constraints",
	"-Wstar-is-type",
	"-Wtabs",
	"-Wtype-defaults",
	"-Wtype-equality-requires-operators",
	"-Wtyped-holes",
	"-Wunbanged-strict-patterns",
	"-Wunrecognised-pragmas",
	"-Wunrecognised-warning-flags",
	"-Wunticked-promoted-constructors",
	"-Wunused-do-bind",
	"-Wunused-foralls",
	"-Wunused-imports",
	"-Wunused-local-binds",
	"-Wunused-matches",
	"-Wunused-packages",
	"-Wunused-pattern-binds",
	"-Wunused-record-wildcards",
	"-Wunused-top-binds",
	"-Wunused-type-patterns",
	"-Wwrong-do-bind",
	"-fdefer-type-errors",
	"-fdiagnostics-color=always",
	"-ffull-laziness",
	"-fno-code",
	"-fno-warn-orphans",
	"-fno-warn-unused-imports",
	"-fomit-yields",
	"-fprint-explicit-foralls",
	"-fprint-explicit-kinds",
	"-fprint-potential-instances",
	"-fwarn-tabs",
	"-threaded",
}
