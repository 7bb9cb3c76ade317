package ignore

// defaultRules is the built-in exclusion list applied to every build before
// any user-supplied rules. It mirrors what a published Flow Launcher Python
// plugin never needs at runtime: repo metadata, docs, caches, virtualenvs,
// editor state, OS junk, tests, and dev tooling configs.
var defaultRules = []string{
	// Build scripts and the packager's own files
	"build_plugin.py",
	"setup.py",
	"publish.py",
	"build.py",
	"deploy.py",
	"flowpack.toml",
	"flowpack.log",

	// Git and forge metadata
	".git/",
	".gitignore",
	".github/",
	".gitattributes",
	".gitlab/",
	".gitlab-ci.yml",

	// Licenses and documentation
	"LICENSE",
	"LICENSE.txt",
	"LICENSE.md",
	"CHANGELOG.md",
	"CONTRIBUTING.md",
	"CODE_OF_CONDUCT.md",
	"README.md",

	// Python caches and coverage artifacts
	"__pycache__/",
	"*.pyc",
	"*.pyo",
	"*.pyd",
	".pytest_cache/",
	".coverage",
	"htmlcov/",
	".tox/",

	// Virtual environments
	".venv/",
	"venv/",
	".env/",
	"env/",

	// IDEs and editors
	".idea/",
	".vs/",
	".vscode/",
	"*.suo",
	"*.user",
	"*.sln",
	"*.swp",
	"*.sublime-*",

	// OS junk
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",

	// Tests
	"tests/",
	"test/",
	"*_test.py",
	"*_tests.py",
	"test_*.py",
	"tests_*.py",

	// Dev-only requirements and linter configs
	"requirements-dev.txt",
	"dev-requirements.txt",
	"requirements_dev.txt",
	"requirements_test.txt",
	"tox.ini",
	"mypy.ini",
	".flake8",
	".pylintrc",
	".pre-commit-config.yaml",
}
